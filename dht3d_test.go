package spectral

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-spectral/internal/reference"
)

func TestNewDHT3DErrors(t *testing.T) {
	for _, sh := range [][3]int{{1, 4, 4}, {4, 1, 4}, {4, 4, 1}, {0, 2, 2}} {
		if _, err := NewDHT3D[float64](sh[0], sh[1], sh[2]); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("NewDHT3D(%v): got %v, want ErrInvalidLength", sh, err)
		}
	}
}

func TestDHT3DMatchesReference(t *testing.T) {
	shapes := [][3]int{
		// power-of-two fast path
		{2, 2, 2}, {2, 4, 8}, {4, 4, 4}, {4, 8, 2}, {8, 4, 4}, {8, 8, 8},
		// mixed-radix path
		{3, 4, 5}, {2, 3, 4}, {4, 6, 4}, {5, 5, 5}, {3, 2, 7},
	}
	for _, sh := range shapes {
		n1, n2, n3 := sh[0], sh[1], sh[2]
		t.Run(fmt.Sprintf("%dx%dx%d", n1, n2, n3), func(t *testing.T) {
			d, err := NewDHT3D[float64](n1, n2, n3)
			if err != nil {
				t.Fatal(err)
			}
			a := randomData(n1*n2*n3, int64(n1*100+n2*10+n3))
			want := reference.DHT3D(a, n1, n2, n3)
			if err := d.Forward(a); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, a, approx(n1*n2*n3)); diff != "" {
				t.Errorf("forward (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDHT3DRoundTrip(t *testing.T) {
	shapes := [][3]int{{2, 2, 2}, {4, 4, 4}, {2, 8, 4}, {3, 4, 5}, {8, 8, 8}, {6, 10, 3}}
	for _, sh := range shapes {
		n1, n2, n3 := sh[0], sh[1], sh[2]
		t.Run(fmt.Sprintf("%dx%dx%d", n1, n2, n3), func(t *testing.T) {
			d, err := NewDHT3D[float64](n1, n2, n3)
			if err != nil {
				t.Fatal(err)
			}
			a := randomData(n1*n2*n3, int64(n1+n2+n3))
			want := append([]float64(nil), a...)
			if err := d.Forward(a); err != nil {
				t.Fatal(err)
			}
			if err := d.Inverse(a, true); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, a, approx(n1*n2*n3)); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDHT3DArrayForm(t *testing.T) {
	const n1, n2, n3 = 4, 2, 8
	d, err := NewDHT3D[float64](n1, n2, n3)
	if err != nil {
		t.Fatal(err)
	}
	flat := randomData(n1*n2*n3, 11)
	nested := make([][][]float64, n1)
	for s := range nested {
		nested[s] = make([][]float64, n2)
		for r := range nested[s] {
			off := s*n2*n3 + r*n3
			nested[s][r] = append([]float64(nil), flat[off:off+n3]...)
		}
	}
	if err := d.Forward(flat); err != nil {
		t.Fatal(err)
	}
	if err := d.ForwardArray(nested); err != nil {
		t.Fatal(err)
	}
	for s := range nested {
		for r := range nested[s] {
			off := s*n2*n3 + r*n3
			if diff := cmp.Diff(flat[off:off+n3], nested[s][r]); diff != "" {
				t.Errorf("slice %d row %d (-flat +nested):\n%s", s, r, diff)
			}
		}
	}

	if err := d.ForwardArray(nested[:n1-1]); !errors.Is(err, ErrShape) {
		t.Errorf("short array: got %v, want ErrShape", err)
	}
	nested[2][1] = nested[2][1][:n3-1]
	if err := d.ForwardArray(nested); !errors.Is(err, ErrShape) {
		t.Errorf("ragged array: got %v, want ErrShape", err)
	}
}

func TestDHT3DShortSlice(t *testing.T) {
	d, err := NewDHT3D[float64](2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Forward(make([]float64, 7)); !errors.Is(err, ErrShortSlice) {
		t.Errorf("Forward: got %v, want ErrShortSlice", err)
	}
}

func TestDHT3DWorkerInvariance(t *testing.T) {
	defer SetWorkerCount(0)
	defer SetParallelThreshold3D(ParallelThreshold3D())
	SetParallelThreshold3D(32)

	shapes := [][3]int{{8, 8, 8}, {4, 8, 2}, {3, 4, 5}}
	for _, sh := range shapes {
		n1, n2, n3 := sh[0], sh[1], sh[2]
		t.Run(fmt.Sprintf("%dx%dx%d", n1, n2, n3), func(t *testing.T) {
			d, err := NewDHT3D[float64](n1, n2, n3)
			if err != nil {
				t.Fatal(err)
			}
			base := randomData(n1*n2*n3, 13)

			SetWorkerCount(1)
			serial := append([]float64(nil), base...)
			if err := d.Forward(serial); err != nil {
				t.Fatal(err)
			}

			for _, workers := range []int{2, 3, 4} {
				SetWorkerCount(workers)
				got := append([]float64(nil), base...)
				if err := d.Forward(got); err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(serial, got); diff != "" {
					t.Errorf("workers=%d (-serial +parallel):\n%s", workers, diff)
				}
			}
		})
	}
}
