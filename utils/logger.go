package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

type LogLevel int

// LogFile adds the caller file:line to each entry, LogFunc also adds the function name
var LogFile bool
var LogFunc bool

const (
	LogLevelError = LogLevel(1 << iota)
	LogLevelInfo
	LogLevelNotice
	LogLevelDebug
)

var GlobalLogLevel = LogLevelError | LogLevelInfo

// LogOutput receives one line per entry
var LogOutput io.Writer = os.Stdout
var logOutputLock sync.Mutex

var logBufPool = sync.Pool{
	New: func() any {
		return make([]byte, 0, 512)
	},
}

func getLogBuf() []byte {
	//nolint:forcetypeassert
	return logBufPool.Get().([]byte)[:0]
}

func returnLogBuf(buf []byte) {
	//nolint:staticcheck
	logBufPool.Put(buf)
}

func Panicf(format string, v ...any) {
	buf := getLogBuf()
	defer returnLogBuf(buf)
	buf = fmt.Appendf(innerPrint(buf, "", "PANIC"), format, v...)
	_println(buf)
	panic(string(buf))
}

func Errorf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelError == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "ERROR"), format, v...))
}

func Logf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelInfo == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "INFO"), format, v...))
}

func Noticef(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelNotice == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "NOTICE"), format, v...))
}

func IsLogLevelDebug() bool {
	return GlobalLogLevel&LogLevelDebug > 0
}

func Debugf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelDebug == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "DEBUG"), format, v...))
}

func _println(buf []byte) {
	buf = bytes.TrimSpace(buf)
	buf = append(buf, '\n')

	logOutputLock.Lock()
	defer logOutputLock.Unlock()
	_, _ = LogOutput.Write(buf)
}

func lastSegment(s string, sep byte) string {
	if i := strings.LastIndexByte(s, sep); i >= 0 {
		return s[i+1:]
	}
	return s
}

func innerPrint(buf []byte, prefix, class string) []byte {
	buf = time.Now().UTC().AppendFormat(buf, "2006-01-02 15:04:05.000")
	if !LogFile {
		return fmt.Appendf(buf, " [%s] %s ", prefix, class)
	}

	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
		line = 0
		pc = 0
	}
	short := lastSegment(file, '/')

	if !LogFunc {
		return fmt.Appendf(buf, " %s:%d [%s] %s ", short, line, prefix, class)
	}

	var function string
	if pc != 0 {
		if details := runtime.FuncForPC(pc); details != nil {
			function = details.Name()
		}
	}
	return fmt.Appendf(buf, " %s:%d:%s [%s] %s ", short, line, lastSegment(lastSegment(function, '/'), '.'), prefix, class)
}
