package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/internal/fft"
	"github.com/cwbudde/algo-spectral/internal/parallel"
)

// DHT3D computes the in-place 3D discrete Hartley transform of data
// laid out slice-major: element (s, r, c) lives at
// s*rows*cols + r*cols + c. All three dimensions must be greater than
// one; any sizes are accepted, with power-of-two shapes taking a
// faster blocked path.
type DHT3D[T Float] struct {
	slices, rows, cols     int
	sliceStride, rowStride int
	pot                    bool

	// One 1D plan per worker and axis; plans hold scratch and cannot
	// be shared across goroutines. Axes of equal length share plans,
	// the passes never overlap in time.
	slicePlans []*DHT[T]
	rowPlans   []*DHT[T]
	colPlans   []*DHT[T]

	t    []T
	flat []T
}

// NewDHT3D builds a plan for slices x rows x cols data.
func NewDHT3D[T Float](slices, rows, cols int) (*DHT3D[T], error) {
	if slices <= 1 || rows <= 1 || cols <= 1 {
		return nil, fmt.Errorf("%w: slices=%d, rows=%d, cols=%d, all must be > 1",
			ErrInvalidLength, slices, rows, cols)
	}
	d := &DHT3D[T]{
		slices:      slices,
		rows:        rows,
		cols:        cols,
		sliceStride: rows * cols,
		rowStride:   cols,
		pot:         fft.IsPowerOfTwo(slices) && fft.IsPowerOfTwo(rows) && fft.IsPowerOfTwo(cols),
	}
	if err := d.ensure(1, 0); err != nil {
		return nil, err
	}
	return d, nil
}

// Slices returns the first dimension of the plan.
func (d *DHT3D[T]) Slices() int { return d.slices }

// Rows returns the second dimension of the plan.
func (d *DHT3D[T]) Rows() int { return d.rows }

// Cols returns the third dimension of the plan.
func (d *DHT3D[T]) Cols() int { return d.cols }

// ensure grows the per-worker plan sets and the gather scratch to
// cover nw workers. Buffers are kept when the worker count shrinks.
func (d *DHT3D[T]) ensure(nw, scratchLen int) error {
	for len(d.colPlans) < nw {
		p, err := NewDHT[T](d.cols)
		if err != nil {
			return err
		}
		d.colPlans = append(d.colPlans, p)
	}
	for len(d.rowPlans) < nw {
		if d.rows == d.cols {
			d.rowPlans = append(d.rowPlans, d.colPlans[len(d.rowPlans)])
		} else {
			p, err := NewDHT[T](d.rows)
			if err != nil {
				return err
			}
			d.rowPlans = append(d.rowPlans, p)
		}
	}
	for len(d.slicePlans) < nw {
		switch {
		case d.slices == d.cols:
			d.slicePlans = append(d.slicePlans, d.colPlans[len(d.slicePlans)])
		case d.slices == d.rows:
			d.slicePlans = append(d.slicePlans, d.rowPlans[len(d.slicePlans)])
		default:
			p, err := NewDHT[T](d.slices)
			if err != nil {
				return err
			}
			d.slicePlans = append(d.slicePlans, p)
		}
	}
	if len(d.t) < scratchLen {
		d.t = make([]T, scratchLen)
	}
	return nil
}

func (d *DHT3D[T]) workerCount() int {
	if parallel.Workers() > 1 && d.slices*d.rows*d.cols >= parallel.Threshold3D() {
		return parallel.Workers()
	}
	return 1
}

// Forward transforms a[:slices*rows*cols] in place.
func (d *DHT3D[T]) Forward(a []T) error {
	return d.run(a, false, false)
}

// Inverse transforms a[:slices*rows*cols] in place. When scale is set
// the result is divided by slices*rows*cols.
func (d *DHT3D[T]) Inverse(a []T, scale bool) error {
	return d.run(a, true, scale)
}

func (d *DHT3D[T]) run(a []T, inverse, scale bool) error {
	total := d.slices * d.sliceStride
	if len(a) < total {
		return fmt.Errorf("%w: len=%d, need %d", ErrShortSlice, len(a), total)
	}
	nw := d.workerCount()
	if d.pot {
		if err := d.slicePass(a, inverse, scale, nw); err != nil {
			return err
		}
		if err := d.depthPass(a, inverse, scale, nw); err != nil {
			return err
		}
	} else if err := d.mixedPasses(a, inverse, scale, nw); err != nil {
		return err
	}
	d.yTransform(a)
	return nil
}

// ForwardArray is Forward for data stored as a nested [slice][row][col]
// array.
func (d *DHT3D[T]) ForwardArray(a [][][]T) error {
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

// InverseArray is Inverse for data stored as a nested [slice][row][col]
// array.
func (d *DHT3D[T]) InverseArray(a [][][]T, scale bool) error {
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

func (d *DHT3D[T]) flatten(a [][][]T) ([]T, error) {
	if len(a) != d.slices {
		return nil, fmt.Errorf("%w: %d slices, plan has %d", ErrShape, len(a), d.slices)
	}
	if d.flat == nil {
		d.flat = make([]T, d.slices*d.sliceStride)
	}
	for s, sl := range a {
		if len(sl) != d.rows {
			return nil, fmt.Errorf("%w: slice %d has %d rows, plan has %d", ErrShape, s, len(sl), d.rows)
		}
		for r, row := range sl {
			if len(row) < d.cols {
				return nil, fmt.Errorf("%w: slice %d row %d has %d columns, plan has %d",
					ErrShape, s, r, len(row), d.cols)
			}
			copy(d.flat[s*d.sliceStride+r*d.rowStride:], row[:d.cols])
		}
	}
	return d.flat, nil
}

func (d *DHT3D[T]) unflatten(buf []T, a [][][]T) {
	for s := range a {
		for r := range a[s] {
			off := s*d.sliceStride + r*d.rowStride
			copy(a[s][r][:d.cols], buf[off:off+d.cols])
		}
	}
}

// apply runs the forward or inverse 1D transform on one contiguous
// line through the given per-worker plan.
func apply[T Float](p *DHT[T], line []T, inverse, scale bool) error {
	if inverse {
		return p.Inverse(line, scale)
	}
	return p.Forward(line)
}

// slicePass handles each slice independently: a length-cols transform
// along every row, then a length-rows transform down the row-columns,
// four columns at a time through the scratch buffer. Workers stripe
// over slices. Power-of-two shapes only.
func (d *DHT3D[T]) slicePass(a []T, inverse, scale bool, nw int) error {
	n1, n2, n3 := d.slices, d.rows, d.cols
	if nw > n1 {
		nw = n1
	}
	seg := 4 * n2
	if n3 == 2 {
		seg >>= 1
	}
	if err := d.ensure(nw, nw*seg); err != nil {
		return err
	}
	run := func(w int) error {
		t := d.t[w*seg : (w+1)*seg]
		cp := d.colPlans[w]
		rp := d.rowPlans[w]
		for i := w; i < n1; i += nw {
			idx0 := i * d.sliceStride
			for j := 0; j < n2; j++ {
				off := idx0 + j*d.rowStride
				if err := apply(cp, a[off:off+n3], inverse, scale); err != nil {
					return err
				}
			}
			if n3 > 2 {
				for k := 0; k < n3; k += 4 {
					for j := 0; j < n2; j++ {
						idx1 := idx0 + j*d.rowStride + k
						t[j] = a[idx1]
						t[n2+j] = a[idx1+1]
						t[2*n2+j] = a[idx1+2]
						t[3*n2+j] = a[idx1+3]
					}
					for c := 0; c < 4; c++ {
						if err := apply(rp, t[c*n2:(c+1)*n2], inverse, scale); err != nil {
							return err
						}
					}
					for j := 0; j < n2; j++ {
						idx1 := idx0 + j*d.rowStride + k
						a[idx1] = t[j]
						a[idx1+1] = t[n2+j]
						a[idx1+2] = t[2*n2+j]
						a[idx1+3] = t[3*n2+j]
					}
				}
			} else {
				for j := 0; j < n2; j++ {
					idx1 := idx0 + j*d.rowStride
					t[j] = a[idx1]
					t[n2+j] = a[idx1+1]
				}
				if err := apply(rp, t[:n2], inverse, scale); err != nil {
					return err
				}
				if err := apply(rp, t[n2:2*n2], inverse, scale); err != nil {
					return err
				}
				for j := 0; j < n2; j++ {
					idx1 := idx0 + j*d.rowStride
					a[idx1] = t[j]
					a[idx1+1] = t[n2+j]
				}
			}
		}
		return nil
	}
	if nw == 1 {
		return run(0)
	}
	return parallel.Run(nw, run)
}

// depthPass runs the length-slices transform across the slice axis,
// four columns at a time through the scratch buffer. Workers stripe
// over rows. Power-of-two shapes only.
func (d *DHT3D[T]) depthPass(a []T, inverse, scale bool, nw int) error {
	n1, n2, n3 := d.slices, d.rows, d.cols
	if nw > n2 {
		nw = n2
	}
	seg := 4 * n1
	if n3 == 2 {
		seg >>= 1
	}
	if err := d.ensure(nw, nw*seg); err != nil {
		return err
	}
	run := func(w int) error {
		t := d.t[w*seg : (w+1)*seg]
		sp := d.slicePlans[w]
		for j := w; j < n2; j += nw {
			if n3 > 2 {
				for k := 0; k < n3; k += 4 {
					for i := 0; i < n1; i++ {
						idx1 := i*d.sliceStride + j*d.rowStride + k
						t[i] = a[idx1]
						t[n1+i] = a[idx1+1]
						t[2*n1+i] = a[idx1+2]
						t[3*n1+i] = a[idx1+3]
					}
					for c := 0; c < 4; c++ {
						if err := apply(sp, t[c*n1:(c+1)*n1], inverse, scale); err != nil {
							return err
						}
					}
					for i := 0; i < n1; i++ {
						idx1 := i*d.sliceStride + j*d.rowStride + k
						a[idx1] = t[i]
						a[idx1+1] = t[n1+i]
						a[idx1+2] = t[2*n1+i]
						a[idx1+3] = t[3*n1+i]
					}
				}
			} else {
				for i := 0; i < n1; i++ {
					idx1 := i*d.sliceStride + j*d.rowStride
					t[i] = a[idx1]
					t[n1+i] = a[idx1+1]
				}
				if err := apply(sp, t[:n1], inverse, scale); err != nil {
					return err
				}
				if err := apply(sp, t[n1:2*n1], inverse, scale); err != nil {
					return err
				}
				for i := 0; i < n1; i++ {
					idx1 := i*d.sliceStride + j*d.rowStride
					a[idx1] = t[i]
					a[idx1+1] = t[n1+i]
				}
			}
		}
		return nil
	}
	if nw == 1 {
		return run(0)
	}
	return parallel.Run(nw, run)
}

// mixedPasses transforms each axis in turn for shapes that are not
// powers of two: the column axis in place, then the row and slice
// axes through a per-worker gather buffer, one line at a time.
func (d *DHT3D[T]) mixedPasses(a []T, inverse, scale bool, nw int) error {
	n1, n2, n3 := d.slices, d.rows, d.cols
	seg := n1
	if n2 > seg {
		seg = n2
	}
	if err := d.ensure(nw, nw*seg); err != nil {
		return err
	}

	colWorkers := nw
	if colWorkers > n1 {
		colWorkers = n1
	}
	colRun := func(w int) error {
		cp := d.colPlans[w]
		for i := w; i < n1; i += colWorkers {
			for j := 0; j < n2; j++ {
				off := i*d.sliceStride + j*d.rowStride
				if err := apply(cp, a[off:off+n3], inverse, scale); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if colWorkers == 1 {
		if err := colRun(0); err != nil {
			return err
		}
	} else if err := parallel.Run(colWorkers, colRun); err != nil {
		return err
	}

	rowWorkers := nw
	if rowWorkers > n1 {
		rowWorkers = n1
	}
	rowRun := func(w int) error {
		t := d.t[w*seg : w*seg+n2]
		rp := d.rowPlans[w]
		for i := w; i < n1; i += rowWorkers {
			for k := 0; k < n3; k++ {
				for j := 0; j < n2; j++ {
					t[j] = a[i*d.sliceStride+j*d.rowStride+k]
				}
				if err := apply(rp, t, inverse, scale); err != nil {
					return err
				}
				for j := 0; j < n2; j++ {
					a[i*d.sliceStride+j*d.rowStride+k] = t[j]
				}
			}
		}
		return nil
	}
	if rowWorkers == 1 {
		if err := rowRun(0); err != nil {
			return err
		}
	} else if err := parallel.Run(rowWorkers, rowRun); err != nil {
		return err
	}

	sliceWorkers := nw
	if sliceWorkers > n2 {
		sliceWorkers = n2
	}
	sliceRun := func(w int) error {
		t := d.t[w*seg : w*seg+n1]
		sp := d.slicePlans[w]
		for j := w; j < n2; j += sliceWorkers {
			for k := 0; k < n3; k++ {
				for i := 0; i < n1; i++ {
					t[i] = a[i*d.sliceStride+j*d.rowStride+k]
				}
				if err := apply(sp, t, inverse, scale); err != nil {
					return err
				}
				for i := 0; i < n1; i++ {
					a[i*d.sliceStride+j*d.rowStride+k] = t[i]
				}
			}
		}
		return nil
	}
	if sliceWorkers == 1 {
		return sliceRun(0)
	}
	return parallel.Run(sliceWorkers, sliceRun)
}

// yTransform converts the separable cas x cas x cas pass into the true
// 3D Hartley kernel by combining each bin with its seven mirror bins
// across the three dimensions.
func (d *DHT3D[T]) yTransform(a []T) {
	n1, n2, n3 := d.slices, d.rows, d.cols
	for s := 0; s <= n1/2; s++ {
		sC := (n1 - s) % n1
		idx9 := s * d.sliceStride
		idx10 := sC * d.sliceStride
		for r := 0; r <= n2/2; r++ {
			rC := (n2 - r) % n2
			idx11 := r * d.rowStride
			idx12 := rC * d.rowStride
			for c := 0; c <= n3/2; c++ {
				cC := (n3 - c) % n3
				idx1 := idx9 + idx12 + c
				idx2 := idx9 + idx11 + cC
				idx3 := idx10 + idx11 + c
				idx4 := idx10 + idx12 + cC
				idx5 := idx10 + idx12 + c
				idx6 := idx10 + idx11 + cC
				idx7 := idx9 + idx11 + c
				idx8 := idx9 + idx12 + cC
				va := a[idx1]
				vb := a[idx2]
				vc := a[idx3]
				vd := a[idx4]
				ve := a[idx5]
				vf := a[idx6]
				vg := a[idx7]
				vh := a[idx8]
				a[idx7] = (va + vb + vc - vd) / 2
				a[idx3] = (ve + vf + vg - vh) / 2
				a[idx1] = (vg + vh + ve - vf) / 2
				a[idx5] = (vc + vd + va - vb) / 2
				a[idx2] = (vh + vg + vf - ve) / 2
				a[idx6] = (vd + vc + vb - va) / 2
				a[idx8] = (vb + va + vd - vc) / 2
				a[idx4] = (vf + ve + vh - vg) / 2
			}
		}
	}
}
