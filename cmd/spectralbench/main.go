// Command spectralbench measures the throughput of the transform
// engines across sizes, transform kinds, and worker counts.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strings"
	"time"

	"github.com/cwbudde/algo-spectral"
	"github.com/cwbudde/algo-spectral/internal/cpu"
)

type runner struct {
	kind string
	// setup builds the plan and returns the per-iteration step working
	// on a private buffer.
	setup func(n int, rnd *rand.Rand) (func() error, error)
}

func main() {
	var (
		sizeList   = flag.String("sizes", "1024,4096,16384,65536", "comma-separated 1D sizes; 2D uses sqrt(n) per side, 3D cbrt(n)")
		kindList   = flag.String("kinds", "complex,real,dht,dht2d,dht3d", "comma-separated transform kinds")
		workerList = flag.String("workers", "", "comma-separated worker counts; empty means GOMAXPROCS only")
		iters      = flag.Int("iters", 50, "benchmark iterations")
		warmup     = flag.Int("warmup", 5, "warmup iterations")
		seed       = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseInts(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}
	workers := parseInts(*workerList)
	if len(workers) == 0 {
		workers = []int{runtime.GOMAXPROCS(0)}
	}

	fmt.Printf("cpu: %s\n", cpu.DetectFeatures())
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%10s  %8s  %8s  %12s\n", "kind", "size", "workers", "ns/op")

	rnd := rand.New(rand.NewSource(*seed))
	defer spectral.SetWorkerCount(0)

	for _, kind := range parseKinds(*kindList) {
		for _, n := range sizes {
			for _, w := range workers {
				spectral.SetWorkerCount(w)
				ns, err := benchmark(kind, n, *iters, *warmup, rnd)
				if err != nil {
					fmt.Printf("%10s  %8d  %8d  error: %v\n", kind.kind, n, w, err)
					continue
				}
				fmt.Printf("%10s  %8d  %8d  %12.1f\n", kind.kind, n, w, ns)
			}
		}
	}
}

func benchmark(r runner, n, iters, warmup int, rnd *rand.Rand) (float64, error) {
	step, err := r.setup(n, rnd)
	if err != nil {
		return 0, err
	}
	for i := 0; i < warmup; i++ {
		if err := step(); err != nil {
			return 0, err
		}
	}
	runtime.GC()
	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := step(); err != nil {
			return 0, err
		}
	}
	return float64(time.Since(start).Nanoseconds()) / float64(iters), nil
}

func parseKinds(list string) []runner {
	var out []runner
	for _, part := range strings.Split(list, ",") {
		switch strings.TrimSpace(part) {
		case "complex":
			out = append(out, runner{"complex", setupComplex})
		case "real":
			out = append(out, runner{"real", setupReal})
		case "dht":
			out = append(out, runner{"dht", setupDHT})
		case "dht2d":
			out = append(out, runner{"dht2d", setupDHT2D})
		case "dht3d":
			out = append(out, runner{"dht3d", setupDHT3D})
		}
	}
	return out
}

func setupComplex(n int, rnd *rand.Rand) (func() error, error) {
	p, err := spectral.NewFFT[float64](n)
	if err != nil {
		return nil, err
	}
	a := randomBuf(2*n, rnd)
	return func() error {
		if err := p.ComplexForward(a); err != nil {
			return err
		}
		return p.ComplexInverse(a, true)
	}, nil
}

func setupReal(n int, rnd *rand.Rand) (func() error, error) {
	p, err := spectral.NewFFT[float64](n)
	if err != nil {
		return nil, err
	}
	a := randomBuf(n, rnd)
	return func() error {
		if err := p.RealForward(a); err != nil {
			return err
		}
		return p.RealInverse(a, true)
	}, nil
}

func setupDHT(n int, rnd *rand.Rand) (func() error, error) {
	p, err := spectral.NewDHT[float64](n)
	if err != nil {
		return nil, err
	}
	a := randomBuf(n, rnd)
	return func() error { return p.Forward(a) }, nil
}

func setupDHT2D(n int, rnd *rand.Rand) (func() error, error) {
	side := sideLength(n, 2)
	p, err := spectral.NewDHT2D[float64](side, side)
	if err != nil {
		return nil, err
	}
	a := randomBuf(side*side, rnd)
	return func() error { return p.Forward(a) }, nil
}

func setupDHT3D(n int, rnd *rand.Rand) (func() error, error) {
	side := sideLength(n, 3)
	p, err := spectral.NewDHT3D[float64](side, side, side)
	if err != nil {
		return nil, err
	}
	a := randomBuf(side*side*side, rnd)
	return func() error { return p.Forward(a) }, nil
}

// sideLength returns the largest power of two whose dim-th power does
// not exceed n, and at least 2.
func sideLength(n, dim int) int {
	side := 2
	for {
		next := side << 1
		total := 1
		for i := 0; i < dim; i++ {
			total *= next
		}
		if total > n {
			return side
		}
		side = next
	}
}

func randomBuf(n int, rnd *rand.Rand) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = 2*rnd.Float64() - 1
	}
	return a
}

func parseInts(list string) []int {
	parts := strings.Split(list, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(part, "%d", &n); err != nil || n <= 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}
