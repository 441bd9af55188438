package utils

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork runs do for every index in [0, workSize) across at most routines goroutines.
// init is called sequentially for each routine before any work starts, so per-routine state
// can be allocated up front. routines <= 0 picks one routine per CPU.
// The first error stops new work from being picked up and is returned.
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	if routines <= 0 {
		routines = max(runtime.NumCPU(), 1)
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	for routineIndex := range routines {
		if err := init(routines, routineIndex); err != nil {
			return err
		}
	}

	var counter atomic.Uint64
	var failed atomic.Bool
	var eg errgroup.Group

	for routineIndex := range routines {
		eg.Go(func() error {
			for !failed.Load() {
				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, routineIndex); err != nil {
					failed.Store(true)
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}
