// Package parallel provides the worker configuration and structured
// fan-out used by the transforms. Work is always partitioned into
// disjoint index ranges, so results do not depend on the worker count.
package parallel

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const (
	defaultThreshold1D = 8192
	defaultThreshold2D = 65536
	defaultThreshold3D = 65536
)

var (
	workers     atomic.Int64
	threshold1D atomic.Int64
	threshold2D atomic.Int64
	threshold3D atomic.Int64
)

func init() {
	workers.Store(int64(runtime.GOMAXPROCS(0)))
	threshold1D.Store(defaultThreshold1D)
	threshold2D.Store(defaultThreshold2D)
	threshold3D.Store(defaultThreshold3D)
}

// Workers returns the configured worker count.
func Workers() int { return int(workers.Load()) }

// SetWorkers sets the worker count. Values below 1 reset it to
// runtime.GOMAXPROCS(0).
func SetWorkers(n int) {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	workers.Store(int64(n))
}

// Threshold1D returns the minimum element count at which 1D transforms
// fan out to multiple workers.
func Threshold1D() int { return int(threshold1D.Load()) }

// SetThreshold1D sets the 1D fan-out threshold. Values below 1 restore
// the default.
func SetThreshold1D(n int) {
	if n < 1 {
		n = defaultThreshold1D
	}
	threshold1D.Store(int64(n))
}

// Threshold2D returns the minimum total element count at which 2D
// transforms fan out to multiple workers.
func Threshold2D() int { return int(threshold2D.Load()) }

// SetThreshold2D sets the 2D fan-out threshold. Values below 1 restore
// the default.
func SetThreshold2D(n int) {
	if n < 1 {
		n = defaultThreshold2D
	}
	threshold2D.Store(int64(n))
}

// Threshold3D returns the minimum total element count at which 3D
// transforms fan out to multiple workers.
func Threshold3D() int { return int(threshold3D.Load()) }

// SetThreshold3D sets the 3D fan-out threshold. Values below 1 restore
// the default.
func SetThreshold3D(n int) {
	if n < 1 {
		n = defaultThreshold3D
	}
	threshold3D.Store(int64(n))
}

// Run executes fn(0) .. fn(parts-1) concurrently and waits for all of
// them. A panic inside fn is recovered and returned as an error rather
// than tearing down the process. parts <= 1 runs inline.
func Run(parts int, fn func(part int) error) error {
	if parts <= 1 {
		if parts == 1 {
			return protect(0, fn)
		}
		return nil
	}
	var g errgroup.Group
	for part := 0; part < parts; part++ {
		part := part
		g.Go(func() error { return protect(part, fn) })
	}
	return g.Wait()
}

// For splits [0,n) into up to Workers() contiguous chunks of at least
// minChunk elements each and runs fn on every chunk. With a single
// chunk fn runs inline.
func For(n, minChunk int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if minChunk < 1 {
		minChunk = 1
	}
	parts := Workers()
	if max := n / minChunk; parts > max {
		parts = max
	}
	if parts <= 1 {
		return protectRange(0, n, fn)
	}
	chunk := n / parts
	var g errgroup.Group
	for part := 0; part < parts; part++ {
		lo := part * chunk
		hi := lo + chunk
		if part == parts-1 {
			hi = n
		}
		g.Go(func() error { return protectRange(lo, hi, fn) })
	}
	return g.Wait()
}

func protect(part int, fn func(int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parallel: worker %d panicked: %v", part, r)
		}
	}()
	return fn(part)
}

func protectRange(lo, hi int, fn func(int, int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parallel: worker for [%d,%d) panicked: %v", lo, hi, r)
		}
	}()
	return fn(lo, hi)
}
