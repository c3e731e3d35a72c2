package spectral

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-spectral/internal/reference"
)

func TestNewDHTRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, -2} {
		if _, err := NewDHT[float64](n); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("NewDHT(%d): got %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestDHTMatchesReference(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 8, 9, 15, 16, 20, 32, 49, 64, 100, 128} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			d, err := NewDHT[float64](n)
			if err != nil {
				t.Fatal(err)
			}
			a := randomData(n, int64(n))
			want := reference.DHT(a)
			if err := d.Forward(a); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, a, approx(n)); diff != "" {
				t.Errorf("forward (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDHTRoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8, 12, 16, 25, 64, 210} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			d, err := NewDHT[float64](n)
			if err != nil {
				t.Fatal(err)
			}
			a := randomData(n, int64(2*n))
			want := append([]float64(nil), a...)
			if err := d.Forward(a); err != nil {
				t.Fatal(err)
			}
			if err := d.Inverse(a, true); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, a, approx(n)); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

// Applying the transform twice multiplies each sample by n.
func TestDHTInvolution(t *testing.T) {
	const n = 32
	d, err := NewDHT[float64](n)
	if err != nil {
		t.Fatal(err)
	}
	a := randomData(n, 7)
	want := make([]float64, n)
	for i, v := range a {
		want[i] = float64(n) * v
	}
	if err := d.Forward(a); err != nil {
		t.Fatal(err)
	}
	if err := d.Forward(a); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, a, approx(n)); diff != "" {
		t.Errorf("double forward (-want +got):\n%s", diff)
	}
}

func TestDHTFloat32(t *testing.T) {
	const n = 16
	d, err := NewDHT[float32](n)
	if err != nil {
		t.Fatal(err)
	}
	a := make([]float32, n)
	for i := range a {
		a[i] = float32(i) / n
	}
	want := append([]float32(nil), a...)
	if err := d.Forward(a); err != nil {
		t.Fatal(err)
	}
	if err := d.Inverse(a, true); err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if diff := a[i] - want[i]; diff > 1e-4 || diff < -1e-4 {
			t.Fatalf("a[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}
