package spectral

import "github.com/cwbudde/algo-spectral/internal/parallel"

// WorkerCount returns the number of goroutines parallel transform
// stages may use. The default is runtime.GOMAXPROCS(0).
func WorkerCount() int { return parallel.Workers() }

// SetWorkerCount sets the worker pool size. Values below 1 restore the
// default. Safe to call concurrently with running transforms; a stage
// reads the count once when it starts.
func SetWorkerCount(n int) { parallel.SetWorkers(n) }

// ParallelThreshold1D returns the minimum number of elements a 1D
// stage must touch before it fans out to the worker pool.
func ParallelThreshold1D() int { return parallel.Threshold1D() }

// SetParallelThreshold1D sets the 1D fan-out threshold. Values below 1
// restore the default.
func SetParallelThreshold1D(n int) { parallel.SetThreshold1D(n) }

// ParallelThreshold2D returns the minimum total element count of a 2D
// plan before its axis passes fan out to the worker pool.
func ParallelThreshold2D() int { return parallel.Threshold2D() }

// SetParallelThreshold2D sets the 2D fan-out threshold. Values below 1
// restore the default.
func SetParallelThreshold2D(n int) { parallel.SetThreshold2D(n) }

// ParallelThreshold3D returns the minimum total element count of a 3D
// plan before its axis passes fan out to the worker pool.
func ParallelThreshold3D() int { return parallel.Threshold3D() }

// SetParallelThreshold3D sets the 3D fan-out threshold. Values below 1
// restore the default.
func SetParallelThreshold3D(n int) { parallel.SetThreshold3D(n) }
