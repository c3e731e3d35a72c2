package fft

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-spectral/internal/parallel"
	"github.com/cwbudde/algo-spectral/internal/reference"
)

// Lengths covering the pure power-of-two engine, single mixed factors,
// composites of the preferred factors and the general fallback (7, 11²).
var testLengths = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 15, 16, 20, 25, 28, 30, 32, 49, 64, 100, 121, 128, 210, 256}

func randomSlice(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	a := make([]float64, n)
	for i := range a {
		a[i] = 2*r.Float64() - 1
	}
	return a
}

func approx64(n int) cmp.Option {
	return cmpopts.EquateApprox(1e-8, 1e-8*float64(n+1))
}

func TestComplexForwardMatchesDFT(t *testing.T) {
	for _, n := range testLengths {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := randomSlice(2*n, int64(n))
			want := reference.DFT(a, -1)

			p := NewPlan[float64](n)
			if err := p.ComplexForward(a); err != nil {
				t.Fatalf("ComplexForward: %v", err)
			}
			if diff := cmp.Diff(want, a, approx64(n)); diff != "" {
				t.Errorf("spectrum mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComplexInverseMatchesDFT(t *testing.T) {
	for _, n := range []int{3, 8, 12, 32, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := randomSlice(2*n, int64(n)+1)
			want := reference.DFT(a, +1)

			p := NewPlan[float64](n)
			if err := p.ComplexInverse(a, false); err != nil {
				t.Fatalf("ComplexInverse: %v", err)
			}
			if diff := cmp.Diff(want, a, approx64(n)); diff != "" {
				t.Errorf("spectrum mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComplexRoundTrip(t *testing.T) {
	for _, n := range testLengths {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			orig := randomSlice(2*n, int64(n)+2)
			a := append([]float64(nil), orig...)

			p := NewPlan[float64](n)
			if err := p.ComplexForward(a); err != nil {
				t.Fatalf("ComplexForward: %v", err)
			}
			if err := p.ComplexInverse(a, true); err != nil {
				t.Fatalf("ComplexInverse: %v", err)
			}
			if diff := cmp.Diff(orig, a, approx64(n)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// packSpectrum reduces a full interleaved spectrum of a real signal to
// the packed in-place layout RealForward produces.
func packSpectrum(full []float64, n int) []float64 {
	out := make([]float64, n)
	out[0] = full[0]
	if n%2 == 0 {
		out[1] = full[n]
		for k := 1; k < n/2; k++ {
			out[2*k] = full[2*k]
			out[2*k+1] = full[2*k+1]
		}
	} else {
		half := (n - 1) / 2
		out[1] = full[2*half+1]
		for k := 1; k <= half; k++ {
			out[2*k] = full[2*k]
			if 2*k+1 < n {
				out[2*k+1] = full[2*k+1]
			}
		}
	}
	return out
}

func TestRealForwardMatchesDFT(t *testing.T) {
	for _, n := range testLengths {
		if n == 1 {
			continue
		}
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := randomSlice(n, int64(n)+3)
			want := packSpectrum(reference.RealDFT(a), n)

			p := NewPlan[float64](n)
			if err := p.RealForward(a); err != nil {
				t.Fatalf("RealForward: %v", err)
			}
			if diff := cmp.Diff(want, a, approx64(n)); diff != "" {
				t.Errorf("packed spectrum mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRealForwardFixture(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	p := NewPlan[float64](4)
	if err := p.RealForward(a); err != nil {
		t.Fatalf("RealForward: %v", err)
	}
	want := []float64{10, -2, -2, 2}
	if diff := cmp.Diff(want, a, approx64(4)); diff != "" {
		t.Errorf("fixture mismatch (-want +got):\n%s", diff)
	}
}

func TestRealRoundTrip(t *testing.T) {
	for _, n := range testLengths {
		if n == 1 {
			continue
		}
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			orig := randomSlice(n, int64(n)+4)
			a := append([]float64(nil), orig...)

			p := NewPlan[float64](n)
			if err := p.RealForward(a); err != nil {
				t.Fatalf("RealForward: %v", err)
			}
			if err := p.RealInverse(a, true); err != nil {
				t.Fatalf("RealInverse: %v", err)
			}
			if diff := cmp.Diff(orig, a, approx64(n)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRealForwardFullMatchesDFT(t *testing.T) {
	for _, n := range testLengths {
		if n == 1 {
			continue
		}
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := randomSlice(n, int64(n)+5)
			want := reference.RealDFT(x)
			if n%2 == 0 {
				// The packed-to-full expansion pins the analytically
				// zero imaginary parts while the oracle leaves rounding
				// noise in them.
				want[1] = 0
				want[n+1] = 0
			} else {
				want[1] = 0
			}

			a := make([]float64, 2*n)
			copy(a, x)
			p := NewPlan[float64](n)
			if err := p.RealForwardFull(a); err != nil {
				t.Fatalf("RealForwardFull: %v", err)
			}
			if diff := cmp.Diff(want, a, approx64(n)); diff != "" {
				t.Errorf("full spectrum mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRealInverseFullMatchesDFT(t *testing.T) {
	for _, n := range testLengths {
		if n == 1 {
			continue
		}
		for _, scale := range []bool{false, true} {
			t.Run(fmt.Sprintf("n=%d/scale=%v", n, scale), func(t *testing.T) {
				x := randomSlice(n, int64(n)+6)
				ext := make([]float64, 2*n)
				for i, v := range x {
					ext[2*i] = v
				}
				want := reference.DFT(ext, +1)
				if scale {
					for i := range want {
						want[i] /= float64(n)
					}
				}
				want[1] = 0
				if n%2 == 0 {
					want[n+1] = 0
				}

				a := make([]float64, 2*n)
				copy(a, x)
				p := NewPlan[float64](n)
				if err := p.RealInverseFull(a, scale); err != nil {
					t.Fatalf("RealInverseFull: %v", err)
				}
				if diff := cmp.Diff(want, a, approx64(n)); diff != "" {
					t.Errorf("full spectrum mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestFloat32MatchesDFT(t *testing.T) {
	opt := cmpopts.EquateApprox(1e-3, 1e-2)
	for _, n := range []int{8, 12, 60, 64} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			src := randomSlice(2*n, int64(n)+7)
			wantF := reference.DFT(src, -1)
			want := make([]float32, 2*n)
			a := make([]float32, 2*n)
			for i := range src {
				want[i] = float32(wantF[i])
				a[i] = float32(src[i])
			}

			p := NewPlan[float32](n)
			if err := p.ComplexForward(a); err != nil {
				t.Fatalf("ComplexForward: %v", err)
			}
			if diff := cmp.Diff(want, a, opt); diff != "" {
				t.Errorf("spectrum mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	defer parallel.SetWorkers(0)
	const n = 4096

	src := randomSlice(2*n, 99)
	serial := append([]float64(nil), src...)
	parallel.SetWorkers(1)
	p := NewPlan[float64](n)
	if err := p.ComplexForward(serial); err != nil {
		t.Fatalf("serial ComplexForward: %v", err)
	}

	for _, w := range []int{2, 4, 7} {
		t.Run(fmt.Sprintf("workers=%d", w), func(t *testing.T) {
			parallel.SetWorkers(w)
			a := append([]float64(nil), src...)
			if err := NewPlan[float64](n).ComplexForward(a); err != nil {
				t.Fatalf("ComplexForward: %v", err)
			}
			// Identical arithmetic regardless of worker count, so the
			// comparison is exact.
			if diff := cmp.Diff(serial, a); diff != "" {
				t.Errorf("worker count changed the result (-serial +parallel):\n%s", diff)
			}
		})
	}
}

func TestScale(t *testing.T) {
	a := []float64{2, 4, 6, 8, 10}
	if err := Scale(a, 4, 2); err != nil {
		t.Fatalf("Scale: %v", err)
	}
	want := []float64{1, 2, 3, 4, 10}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("Scale mismatch (-want +got):\n%s", diff)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for n, want := range map[int]bool{1: true, 2: true, 3: false, 4: true, 6: false, 64: true, 96: false, 0: false, -4: false} {
		if got := IsPowerOfTwo(n); got != want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestFactorize(t *testing.T) {
	for _, n := range []int{2, 3, 4, 6, 8, 12, 20, 30, 49, 98, 100, 120, 210, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			fs := factorize(n)
			prod := 1
			for _, f := range fs {
				prod *= f
			}
			if prod != n {
				t.Fatalf("factorize(%d) = %v, product %d", n, fs, prod)
			}
			for i, f := range fs {
				if f == 2 && i != 0 {
					t.Errorf("factorize(%d) = %v: factor 2 not in front", n, fs)
				}
			}
		})
	}
}
