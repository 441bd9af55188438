package utils

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestSplitWork(t *testing.T) {
	for _, routines := range []int{0, 1, 3, 16} {
		const workSize = 10
		var seen [workSize]atomic.Int32
		var inits atomic.Int32

		err := SplitWork(routines, workSize, func(workIndex uint64, routineIndex int) error {
			seen[workIndex].Add(1)
			return nil
		}, func(routines, routineIndex int) error {
			if routines > workSize {
				t.Errorf("routines %d exceed work size", routines)
			}
			inits.Add(1)
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}

		for i := range seen {
			if n := seen[i].Load(); n != 1 {
				t.Fatalf("routines %d: index %d ran %d times", routines, i, n)
			}
		}
		if inits.Load() == 0 {
			t.Fatalf("routines %d: init never called", routines)
		}
	}
}

func TestSplitWork_Error(t *testing.T) {
	errStop := errors.New("stop")

	err := SplitWork(2, 100, func(workIndex uint64, routineIndex int) error {
		if workIndex == 5 {
			return errStop
		}
		return nil
	}, func(routines, routineIndex int) error {
		return nil
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("expected %v, got %v", errStop, err)
	}

	err = SplitWork(2, 100, func(workIndex uint64, routineIndex int) error {
		t.Error("work ran after init failure")
		return nil
	}, func(routines, routineIndex int) error {
		return errStop
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("expected %v, got %v", errStop, err)
	}
}
