package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/internal/fft"
	"github.com/cwbudde/algo-spectral/internal/parallel"
)

// DHT2D computes the in-place 2D discrete Hartley transform of
// row-major data. Both dimensions must be powers of two greater
// than one.
//
// The transform runs a Hartley pass over the columns, one over the
// rows, and a final parity correction combining each bin with its three
// mirror bins. Columns travel four at a time through a scratch buffer
// so the 1D engine always works on contiguous data.
type DHT2D[T Float] struct {
	rows, cols int

	// One 1D plan per worker; plans hold scratch and cannot be shared
	// across goroutines. Index 0 serves the serial path.
	colPlans []*DHT[T]
	rowPlans []*DHT[T]

	t    []T
	flat []T
}

// NewDHT2D builds a plan for rows x cols data.
func NewDHT2D[T Float](rows, cols int) (*DHT2D[T], error) {
	if rows <= 1 || cols <= 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d, both must be > 1", ErrInvalidLength, rows, cols)
	}
	if !fft.IsPowerOfTwo(rows) || !fft.IsPowerOfTwo(cols) {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrNotPowerOfTwo, rows, cols)
	}
	d := &DHT2D[T]{rows: rows, cols: cols}
	if err := d.ensure(1, 0); err != nil {
		return nil, err
	}
	return d, nil
}

// Rows returns the first dimension of the plan.
func (d *DHT2D[T]) Rows() int { return d.rows }

// Cols returns the second dimension of the plan.
func (d *DHT2D[T]) Cols() int { return d.cols }

// ensure grows the per-worker plan sets and the column scratch to
// cover nw workers. Buffers are kept when the worker count shrinks.
func (d *DHT2D[T]) ensure(nw, scratchLen int) error {
	for len(d.colPlans) < nw {
		p, err := NewDHT[T](d.rows)
		if err != nil {
			return err
		}
		d.colPlans = append(d.colPlans, p)
	}
	for len(d.rowPlans) < nw {
		if d.rows == d.cols {
			d.rowPlans = append(d.rowPlans, d.colPlans[len(d.rowPlans)])
		} else {
			p, err := NewDHT[T](d.cols)
			if err != nil {
				return err
			}
			d.rowPlans = append(d.rowPlans, p)
		}
	}
	if len(d.t) < scratchLen {
		d.t = make([]T, scratchLen)
	}
	return nil
}

func (d *DHT2D[T]) workerCount() int {
	if parallel.Workers() > 1 && d.rows*d.cols >= parallel.Threshold2D() {
		return parallel.Workers()
	}
	return 1
}

// Forward transforms a[:rows*cols] in place.
func (d *DHT2D[T]) Forward(a []T) error {
	if len(a) < d.rows*d.cols {
		return fmt.Errorf("%w: len=%d, need %d", ErrShortSlice, len(a), d.rows*d.cols)
	}
	nw := d.workerCount()
	if err := d.columnPass(a, false, false, nw); err != nil {
		return err
	}
	if err := d.rowPass(a, false, false, nw); err != nil {
		return err
	}
	d.yTransform(a)
	return nil
}

// Inverse transforms a[:rows*cols] in place. When scale is set the
// result is divided by rows*cols.
func (d *DHT2D[T]) Inverse(a []T, scale bool) error {
	if len(a) < d.rows*d.cols {
		return fmt.Errorf("%w: len=%d, need %d", ErrShortSlice, len(a), d.rows*d.cols)
	}
	nw := d.workerCount()
	if err := d.columnPass(a, true, scale, nw); err != nil {
		return err
	}
	if err := d.rowPass(a, true, scale, nw); err != nil {
		return err
	}
	d.yTransform(a)
	return nil
}

// ForwardArray is Forward for data stored as rows of a nested array.
func (d *DHT2D[T]) ForwardArray(a [][]T) error {
	buf, err := d.flatten(a)
	if err != nil {
		return err
	}
	if err := d.Forward(buf); err != nil {
		return err
	}
	d.unflatten(buf, a)
	return nil
}

// InverseArray is Inverse for data stored as rows of a nested array.
func (d *DHT2D[T]) InverseArray(a [][]T, scale bool) error {
	buf, err := d.flatten(a)
	if err != nil {
		return err
	}
	if err := d.Inverse(buf, scale); err != nil {
		return err
	}
	d.unflatten(buf, a)
	return nil
}

func (d *DHT2D[T]) flatten(a [][]T) ([]T, error) {
	if len(a) != d.rows {
		return nil, fmt.Errorf("%w: %d rows, plan has %d", ErrShape, len(a), d.rows)
	}
	if d.flat == nil {
		d.flat = make([]T, d.rows*d.cols)
	}
	for i, row := range a {
		if len(row) < d.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, plan has %d", ErrShape, i, len(row), d.cols)
		}
		copy(d.flat[i*d.cols:(i+1)*d.cols], row)
	}
	return d.flat, nil
}

func (d *DHT2D[T]) unflatten(buf []T, a [][]T) {
	for i := range a {
		copy(a[i][:d.cols], buf[i*d.cols:(i+1)*d.cols])
	}
}

// columnPass runs the length-rows Hartley transform down every column.
// With nw > 1, worker w takes every nw-th group of four columns with
// its own scratch segment; narrow inputs fall back to two columns or
// one column per worker.
func (d *DHT2D[T]) columnPass(a []T, inverse, scale bool, nw int) error {
	n1, n2 := d.rows, d.cols
	seg := 4 * n1
	if n2 == 2*nw {
		seg = 2 * n1
	} else if n2 < 2*nw {
		nw = n2
		seg = n1
	}
	if err := d.ensure(nw, nw*seg); err != nil {
		return err
	}
	run := func(w int) error {
		t := d.t[w*seg : (w+1)*seg]
		p := d.colPlans[w]
		apply := func(off int) error {
			if inverse {
				return p.Inverse(t[off:off+n1], scale)
			}
			return p.Forward(t[off : off+n1])
		}
		switch {
		case n2 > 2*nw:
			for j := 4 * w; j < n2; j += 4 * nw {
				for i := 0; i < n1; i++ {
					idx := i*n2 + j
					t[i] = a[idx]
					t[n1+i] = a[idx+1]
					t[2*n1+i] = a[idx+2]
					t[3*n1+i] = a[idx+3]
				}
				for c := 0; c < 4; c++ {
					if err := apply(c * n1); err != nil {
						return err
					}
				}
				for i := 0; i < n1; i++ {
					idx := i*n2 + j
					a[idx] = t[i]
					a[idx+1] = t[n1+i]
					a[idx+2] = t[2*n1+i]
					a[idx+3] = t[3*n1+i]
				}
			}
		case n2 == 2*nw:
			j := 2 * w
			for i := 0; i < n1; i++ {
				idx := i*n2 + j
				t[i] = a[idx]
				t[n1+i] = a[idx+1]
			}
			if err := apply(0); err != nil {
				return err
			}
			if err := apply(n1); err != nil {
				return err
			}
			for i := 0; i < n1; i++ {
				idx := i*n2 + j
				a[idx] = t[i]
				a[idx+1] = t[n1+i]
			}
		default: // n2 == nw
			for i := 0; i < n1; i++ {
				t[i] = a[i*n2+w]
			}
			if err := apply(0); err != nil {
				return err
			}
			for i := 0; i < n1; i++ {
				a[i*n2+w] = t[i]
			}
		}
		return nil
	}
	if nw == 1 {
		return run(0)
	}
	return parallel.Run(nw, run)
}

// rowPass runs the length-cols Hartley transform over every row, rows
// striped across workers.
func (d *DHT2D[T]) rowPass(a []T, inverse, scale bool, nw int) error {
	if nw > d.rows {
		nw = d.rows
	}
	if err := d.ensure(nw, 0); err != nil {
		return err
	}
	run := func(w int) error {
		p := d.rowPlans[w]
		for i := w; i < d.rows; i += nw {
			row := a[i*d.cols : (i+1)*d.cols]
			if inverse {
				if err := p.Inverse(row, scale); err != nil {
					return err
				}
			} else if err := p.Forward(row); err != nil {
				return err
			}
		}
		return nil
	}
	if nw == 1 {
		return run(0)
	}
	return parallel.Run(nw, run)
}

// yTransform converts the separable cas x cas pass into the true 2D
// Hartley kernel cas(2*pi*(j1*k1/n1 + j2*k2/n2)) by combining each bin
// with its mirrors in both dimensions.
func (d *DHT2D[T]) yTransform(a []T) {
	n1, n2 := d.rows, d.cols
	for row := 0; row <= n1/2; row++ {
		mRow := (n1 - row) % n1
		for col := 0; col <= n2/2; col++ {
			mCol := (n2 - col) % n2
			va := a[row*n2+col]
			vb := a[mRow*n2+col]
			vc := a[row*n2+mCol]
			vd := a[mRow*n2+mCol]
			e := ((va + vd) - (vb + vc)) / 2
			a[row*n2+col] = va - e
			a[mRow*n2+col] = vb + e
			a[row*n2+mCol] = vc + e
			a[mRow*n2+mCol] = vd - e
		}
	}
}
