package parallel

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestSetWorkers(t *testing.T) {
	old := Workers()
	defer SetWorkers(old)

	SetWorkers(3)
	if got := Workers(); got != 3 {
		t.Errorf("Workers() = %d, want 3", got)
	}
	SetWorkers(0)
	if got := Workers(); got != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() after reset = %d, want %d", got, runtime.GOMAXPROCS(0))
	}
}

func TestThresholdDefaults(t *testing.T) {
	SetThreshold1D(0)
	SetThreshold2D(0)
	SetThreshold3D(0)
	if Threshold1D() != defaultThreshold1D {
		t.Errorf("Threshold1D() = %d, want %d", Threshold1D(), defaultThreshold1D)
	}
	if Threshold2D() != defaultThreshold2D {
		t.Errorf("Threshold2D() = %d, want %d", Threshold2D(), defaultThreshold2D)
	}
	if Threshold3D() != defaultThreshold3D {
		t.Errorf("Threshold3D() = %d, want %d", Threshold3D(), defaultThreshold3D)
	}
}

func TestRunCoversAllParts(t *testing.T) {
	var seen [8]atomic.Int32
	err := Run(len(seen), func(part int) error {
		seen[part].Add(1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := range seen {
		if got := seen[i].Load(); got != 1 {
			t.Errorf("part %d ran %d times, want 1", i, got)
		}
	}
}

func TestRunPropagatesError(t *testing.T) {
	want := errors.New("boom")
	err := Run(4, func(part int) error {
		if part == 2 {
			return want
		}
		return nil
	})
	if !errors.Is(err, want) {
		t.Errorf("Run error = %v, want %v", err, want)
	}
}

func TestRunRecoversPanic(t *testing.T) {
	err := Run(2, func(part int) error {
		if part == 1 {
			panic("kaboom")
		}
		return nil
	})
	if err == nil {
		t.Fatal("Run returned nil after worker panic")
	}
}

func TestForCoversRange(t *testing.T) {
	old := Workers()
	defer SetWorkers(old)

	for _, nw := range []int{1, 2, 5} {
		SetWorkers(nw)
		const n = 1000
		marks := make([]atomic.Int32, n)
		err := For(n, 16, func(lo, hi int) error {
			for i := lo; i < hi; i++ {
				marks[i].Add(1)
			}
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		for i := range marks {
			if got := marks[i].Load(); got != 1 {
				t.Fatalf("workers=%d: index %d visited %d times, want 1", nw, i, got)
			}
		}
	}
}

func TestForSmallRangeRunsInline(t *testing.T) {
	var calls int
	err := For(10, 100, func(lo, hi int) error {
		calls++
		if lo != 0 || hi != 10 {
			t.Errorf("chunk [%d,%d), want [0,10)", lo, hi)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}
