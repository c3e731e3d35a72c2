package spectral

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-spectral/internal/reference"
)

func TestNewDHT2DErrors(t *testing.T) {
	if _, err := NewDHT2D[float64](1, 8); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("rows=1: got %v, want ErrInvalidLength", err)
	}
	if _, err := NewDHT2D[float64](8, 0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("cols=0: got %v, want ErrInvalidLength", err)
	}
	if _, err := NewDHT2D[float64](6, 4); !errors.Is(err, ErrNotPowerOfTwo) {
		t.Errorf("rows=6: got %v, want ErrNotPowerOfTwo", err)
	}
	if _, err := NewDHT2D[float64](4, 12); !errors.Is(err, ErrNotPowerOfTwo) {
		t.Errorf("cols=12: got %v, want ErrNotPowerOfTwo", err)
	}
}

func TestDHT2DMatchesReference(t *testing.T) {
	shapes := [][2]int{{2, 2}, {2, 8}, {4, 4}, {4, 2}, {8, 4}, {8, 16}, {16, 16}}
	for _, sh := range shapes {
		rows, cols := sh[0], sh[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			d, err := NewDHT2D[float64](rows, cols)
			if err != nil {
				t.Fatal(err)
			}
			a := randomData(rows*cols, int64(rows*100+cols))
			want := reference.DHT2D(a, rows, cols)
			if err := d.Forward(a); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, a, approx(rows*cols)); diff != "" {
				t.Errorf("forward (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDHT2DRoundTrip(t *testing.T) {
	shapes := [][2]int{{2, 4}, {4, 4}, {8, 2}, {16, 8}, {32, 32}}
	for _, sh := range shapes {
		rows, cols := sh[0], sh[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			d, err := NewDHT2D[float64](rows, cols)
			if err != nil {
				t.Fatal(err)
			}
			a := randomData(rows*cols, int64(rows+cols))
			want := append([]float64(nil), a...)
			if err := d.Forward(a); err != nil {
				t.Fatal(err)
			}
			if err := d.Inverse(a, true); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, a, approx(rows*cols)); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDHT2DArrayForm(t *testing.T) {
	const rows, cols = 8, 4
	d, err := NewDHT2D[float64](rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	flat := randomData(rows*cols, 42)
	nested := make([][]float64, rows)
	for i := range nested {
		nested[i] = append([]float64(nil), flat[i*cols:(i+1)*cols]...)
	}
	if err := d.Forward(flat); err != nil {
		t.Fatal(err)
	}
	if err := d.ForwardArray(nested); err != nil {
		t.Fatal(err)
	}
	for i := range nested {
		if diff := cmp.Diff(flat[i*cols:(i+1)*cols], nested[i]); diff != "" {
			t.Errorf("row %d (-flat +nested):\n%s", i, diff)
		}
	}

	if err := d.ForwardArray(nested[:rows-1]); !errors.Is(err, ErrShape) {
		t.Errorf("short array: got %v, want ErrShape", err)
	}
	ragged := make([][]float64, rows)
	for i := range ragged {
		ragged[i] = make([]float64, cols)
	}
	ragged[3] = ragged[3][:cols-1]
	if err := d.ForwardArray(ragged); !errors.Is(err, ErrShape) {
		t.Errorf("ragged array: got %v, want ErrShape", err)
	}
}

func TestDHT2DShortSlice(t *testing.T) {
	d, err := NewDHT2D[float64](4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Forward(make([]float64, 15)); !errors.Is(err, ErrShortSlice) {
		t.Errorf("Forward: got %v, want ErrShortSlice", err)
	}
	if err := d.Inverse(make([]float64, 15), true); !errors.Is(err, ErrShortSlice) {
		t.Errorf("Inverse: got %v, want ErrShortSlice", err)
	}
}

func TestDHT2DWorkerInvariance(t *testing.T) {
	const rows, cols = 32, 32
	defer SetWorkerCount(0)
	defer SetParallelThreshold2D(ParallelThreshold2D())
	SetParallelThreshold2D(64)

	d, err := NewDHT2D[float64](rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	base := randomData(rows*cols, 9)

	SetWorkerCount(1)
	serial := append([]float64(nil), base...)
	if err := d.Forward(serial); err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{2, 3, 4, 8} {
		SetWorkerCount(workers)
		got := append([]float64(nil), base...)
		if err := d.Forward(got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(serial, got); diff != "" {
			t.Errorf("workers=%d (-serial +parallel):\n%s", workers, diff)
		}
	}
}
