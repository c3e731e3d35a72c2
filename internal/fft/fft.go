// Package fft implements the one-dimensional transform engine shared by
// the public plans. Lengths that are powers of two run on a recursive
// radix-4 decimation-in-time engine; all other lengths run on a
// mixed-radix engine factoring over 4, 2, 3, 5 and a general fallback.
//
// Data is interleaved: element k of a complex sequence lives at
// a[2k] (real part) and a[2k+1] (imaginary part). Forward transforms use
// the negative exponent convention and no transform applies scaling on
// its own; inverses take an explicit flag.
package fft

import (
	"github.com/cwbudde/algo-spectral/internal/fftypes"
	"github.com/cwbudde/algo-spectral/internal/parallel"
)

// Plan holds the precomputed tables and scratch for transforms of a
// single length.
//
// A Plan may be reused for any number of transforms but must not be used
// from multiple goroutines at once; the scratch buffers are shared
// between calls.
type Plan[T fftypes.Float] struct {
	n     int
	pow2  *pow2Plan[T]
	mixed *mixedPlan[T]
}

// NewPlan builds a plan for length n.
//
// Caller guarantees: n >= 1.
func NewPlan[T fftypes.Float](n int) *Plan[T] {
	p := &Plan[T]{n: n}
	if n == 1 {
		return p
	}
	if IsPowerOfTwo(n) {
		p.pow2 = newPow2Plan[T](n)
	} else {
		p.mixed = newMixedPlan[T](n)
	}
	return p
}

// N returns the transform length the plan was built for.
func (p *Plan[T]) N() int { return p.n }

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// ComplexForward transforms n interleaved complex values in place.
//
// Caller guarantees: len(a) >= 2n.
func (p *Plan[T]) ComplexForward(a []T) error {
	if p.n == 1 {
		return nil
	}
	if p.pow2 != nil {
		return p.pow2.complexTransform(a, -1)
	}
	p.mixed.cfft(a, -1)
	return nil
}

// ComplexInverse applies the positive-exponent transform in place,
// dividing by n when scale is set.
//
// Caller guarantees: len(a) >= 2n.
func (p *Plan[T]) ComplexInverse(a []T, scale bool) error {
	if p.n == 1 {
		return nil
	}
	if p.pow2 != nil {
		if err := p.pow2.complexTransform(a, +1); err != nil {
			return err
		}
	} else {
		p.mixed.cfft(a, +1)
	}
	if scale {
		return Scale(a, 2*p.n, T(p.n))
	}
	return nil
}

// RealForward transforms n real values in place into the packed
// half-spectrum layout.
//
// Even n:
//
//	a[2k]   = Re[k], 0 <= k < n/2
//	a[2k+1] = Im[k], 0 <  k < n/2
//	a[1]    = Re[n/2]
//
// Odd n:
//
//	a[2k]   = Re[k], 0 <= k < (n+1)/2
//	a[2k+1] = Im[k], 0 <  k < (n-1)/2
//	a[1]    = Im[(n-1)/2]
//
// Caller guarantees: len(a) >= n.
func (p *Plan[T]) RealForward(a []T) error {
	if p.n == 1 {
		return nil
	}
	if p.pow2 != nil {
		return p.pow2.realForward(a)
	}
	p.mixed.rfftf(a)
	packReal(a, p.n)
	return nil
}

// RealInverse undoes RealForward in place. When scale is set the result
// is divided by the unscaled gain of the path, n/2 for power-of-two
// lengths and n otherwise, so a scaled inverse restores the input of
// RealForward exactly up to rounding.
//
// Caller guarantees: len(a) >= n.
func (p *Plan[T]) RealInverse(a []T, scale bool) error {
	if p.n == 1 {
		return nil
	}
	if p.pow2 != nil {
		if err := p.pow2.realInverse(a); err != nil {
			return err
		}
		if scale {
			return Scale(a, p.n, T(p.n)/2)
		}
		return nil
	}
	unpackReal(a, p.n)
	p.mixed.rfftb(a)
	if scale {
		return Scale(a, p.n, T(p.n))
	}
	return nil
}

// RealForwardFull transforms n real values into the full 2n-element
// conjugate-symmetric spectrum, matching ComplexForward applied to the
// same values with zero imaginary parts.
//
// Caller guarantees: len(a) >= 2n, real input in a[:n].
func (p *Plan[T]) RealForwardFull(a []T) error {
	if p.n == 1 {
		a[1] = 0
		return nil
	}
	if p.pow2 != nil {
		return p.pow2.realForwardFull(a)
	}
	p.mixed.realFull(a, false)
	return nil
}

// RealInverseFull computes the full 2n-element inverse spectrum of n
// real values, matching ComplexInverse applied to the same values with
// zero imaginary parts. scale divides by n.
//
// Caller guarantees: len(a) >= 2n, real input in a[:n].
func (p *Plan[T]) RealInverseFull(a []T, scale bool) error {
	if p.n == 1 {
		a[1] = 0
		return nil
	}
	if p.pow2 != nil {
		return p.pow2.realInverseFull(a, scale)
	}
	if scale {
		if err := Scale(a, p.n, T(p.n)); err != nil {
			return err
		}
	}
	p.mixed.realFull(a, true)
	return nil
}

// packReal converts the interleaved-by-frequency order produced by the
// mixed-radix real driver into the packed half-spectrum layout. The
// rotation runs high to low so every element moves exactly once.
func packReal[T fftypes.Float](a []T, n int) {
	for k := n - 1; k >= 2; k-- {
		a[k], a[k-1] = a[k-1], a[k]
	}
}

// unpackReal is the inverse rotation of packReal.
func unpackReal[T fftypes.Float](a []T, n int) {
	for k := 2; k < n; k++ {
		a[k-1], a[k] = a[k], a[k-1]
	}
}

// Scale multiplies a[:count] by 1/div, fanning out for large counts.
func Scale[T fftypes.Float](a []T, count int, div T) error {
	norm := 1 / div
	return parallel.For(count, parallel.Threshold1D(), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			a[i] *= norm
		}
		return nil
	})
}
