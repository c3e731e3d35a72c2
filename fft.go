package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/internal/fft"
)

// FFT computes in-place 1D discrete Fourier transforms of a fixed
// length n. Arbitrary lengths are supported; powers of two run on a
// radix-4 engine, everything else on a mixed-radix engine over the
// factors 4, 2, 3, 5 and a general fallback.
//
// Forward transforms use the negative exponent convention and apply no
// scaling; inverses take a scale flag.
type FFT[T Float] struct {
	n    int
	plan *fft.Plan[T]
}

// NewFFT builds a transform plan for length n >= 1.
func NewFFT[T Float](n int) (*FFT[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidLength, n)
	}
	return &FFT[T]{n: n, plan: fft.NewPlan[T](n)}, nil
}

// N returns the transform length.
func (f *FFT[T]) N() int { return f.n }

func (f *FFT[T]) check(a []T, need int) error {
	if len(a) < need {
		return fmt.Errorf("%w: len=%d, need %d", ErrShortSlice, len(a), need)
	}
	return nil
}

// ComplexForward transforms n complex values stored interleaved as
// [re0, im0, re1, im1, ...] in a[:2n].
func (f *FFT[T]) ComplexForward(a []T) error {
	if err := f.check(a, 2*f.n); err != nil {
		return err
	}
	return f.plan.ComplexForward(a)
}

// ComplexInverse transforms n interleaved complex values with the
// positive exponent convention. When scale is set the result is
// divided by n, making it the exact inverse of ComplexForward.
func (f *FFT[T]) ComplexInverse(a []T, scale bool) error {
	if err := f.check(a, 2*f.n); err != nil {
		return err
	}
	return f.plan.ComplexInverse(a, scale)
}

// RealForward transforms n real values in place into the packed half
// spectrum.
//
// Even n:
//
//	a[0]    = Re[0]
//	a[1]    = Re[n/2]
//	a[2k]   = Re[k], a[2k+1] = Im[k], 0 < k < n/2
//
// Odd n:
//
//	a[0]    = Re[0]
//	a[2k]   = Re[k], 0 < k < (n+1)/2
//	a[2k+1] = Im[k], 0 < k < (n-1)/2
//	a[1]    = Im[(n-1)/2]
func (f *FFT[T]) RealForward(a []T) error {
	if err := f.check(a, f.n); err != nil {
		return err
	}
	return f.plan.RealForward(a)
}

// RealInverse undoes RealForward. When scale is set the result is
// divided by the unscaled gain of the chosen engine, n/2 for powers of
// two and n otherwise, restoring RealForward's input exactly up to
// rounding.
func (f *FFT[T]) RealInverse(a []T, scale bool) error {
	if err := f.check(a, f.n); err != nil {
		return err
	}
	return f.plan.RealInverse(a, scale)
}

// RealForwardFull transforms the n real values in a[:n] into the full
// 2n-float conjugate-symmetric spectrum in a[:2n], equal to
// ComplexForward of the same values with zero imaginary parts.
func (f *FFT[T]) RealForwardFull(a []T) error {
	if err := f.check(a, 2*f.n); err != nil {
		return err
	}
	return f.plan.RealForwardFull(a)
}

// RealInverseFull transforms the n real values in a[:n] into the full
// 2n-float spectrum of the positive-exponent transform. scale divides
// by n.
func (f *FFT[T]) RealInverseFull(a []T, scale bool) error {
	if err := f.check(a, 2*f.n); err != nil {
		return err
	}
	return f.plan.RealInverseFull(a, scale)
}
