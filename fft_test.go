package spectral

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-spectral/internal/reference"
)

func TestNewFFTRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, -1, -64} {
		if _, err := NewFFT[float64](n); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("NewFFT(%d): got %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestFFTShortSlice(t *testing.T) {
	f, err := NewFFT[float64](8)
	if err != nil {
		t.Fatal(err)
	}
	short := make([]float64, 7)
	if err := f.ComplexForward(short); !errors.Is(err, ErrShortSlice) {
		t.Errorf("ComplexForward: got %v, want ErrShortSlice", err)
	}
	if err := f.RealForward(short); !errors.Is(err, ErrShortSlice) {
		t.Errorf("RealForward: got %v, want ErrShortSlice", err)
	}
	if err := f.RealForwardFull(make([]float64, 15)); !errors.Is(err, ErrShortSlice) {
		t.Errorf("RealForwardFull: got %v, want ErrShortSlice", err)
	}
	if err := f.RealInverseFull(make([]float64, 15), true); !errors.Is(err, ErrShortSlice) {
		t.Errorf("RealInverseFull: got %v, want ErrShortSlice", err)
	}
}

func TestFFTSizeOne(t *testing.T) {
	f, err := NewFFT[float64](1)
	if err != nil {
		t.Fatal(err)
	}
	a := []float64{3.5, -1.25}
	want := []float64{3.5, -1.25}
	if err := f.ComplexForward(a); err != nil {
		t.Fatal(err)
	}
	if err := f.RealForward(a); err != nil {
		t.Fatal(err)
	}
	if err := f.RealInverse(a, true); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("length-1 transforms modified data (-want +got):\n%s", diff)
	}
}

func TestRealForwardFixture(t *testing.T) {
	f, err := NewFFT[float64](4)
	if err != nil {
		t.Fatal(err)
	}
	a := []float64{1, 2, 3, 4}
	if err := f.RealForward(a); err != nil {
		t.Fatal(err)
	}
	want := []float64{10, -2, -2, 2}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("RealForward([1 2 3 4]) (-want +got):\n%s", diff)
	}
}

func TestComplexRoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8, 12, 16, 30, 64, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			f, err := NewFFT[float64](n)
			if err != nil {
				t.Fatal(err)
			}
			a := randomData(2*n, int64(n))
			want := append([]float64(nil), a...)
			if err := f.ComplexForward(a); err != nil {
				t.Fatal(err)
			}
			if err := f.ComplexInverse(a, true); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, a, approx(n)); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRealRoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 8, 12, 16, 25, 32, 100, 128} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			f, err := NewFFT[float64](n)
			if err != nil {
				t.Fatal(err)
			}
			a := randomData(n, int64(n))
			want := append([]float64(nil), a...)
			if err := f.RealForward(a); err != nil {
				t.Fatal(err)
			}
			if err := f.RealInverse(a, true); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, a, approx(n)); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRealForwardFullMatchesReference(t *testing.T) {
	for _, n := range []int{4, 6, 8, 15, 16, 32} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			f, err := NewFFT[float64](n)
			if err != nil {
				t.Fatal(err)
			}
			x := randomData(n, int64(100+n))
			want := reference.RealDFT(x)
			a := make([]float64, 2*n)
			copy(a, x)
			if err := f.RealForwardFull(a); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, a, approx(n)); diff != "" {
				t.Errorf("full spectrum (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFloat32FFT(t *testing.T) {
	f, err := NewFFT[float32](16)
	if err != nil {
		t.Fatal(err)
	}
	a := make([]float32, 16)
	for i := range a {
		a[i] = float32(i%5) - 2
	}
	want := append([]float32(nil), a...)
	if err := f.RealForward(a); err != nil {
		t.Fatal(err)
	}
	if err := f.RealInverse(a, true); err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if d := a[i] - want[i]; d > 1e-4 || d < -1e-4 {
			t.Fatalf("a[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}
