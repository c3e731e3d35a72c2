package fft

import (
	"math"

	"github.com/cwbudde/algo-spectral/internal/fftypes"
	"github.com/cwbudde/algo-spectral/internal/parallel"
)

// segment addresses a strided view into an interleaved complex array:
// element j of the view lives at off + 2*stride*j.
type segment struct {
	off    int
	n      int
	stride int
}

// pow2Plan is the transform engine for power-of-two lengths. It runs a
// recursive radix-4 decimation in time, reading strided input and
// writing contiguous output, so a single scratch buffer and a final
// copy back replace the usual bit-reversal permutation.
//
// The twiddle table holds (cos, sin) pairs of 2*pi*j/n for j in [0, n).
// Every recursion depth and the real split below index into the same
// table, scaled by n/size.
type pow2Plan[T fftypes.Float] struct {
	n       int
	tw      []T
	scratch []T
}

func newPow2Plan[T fftypes.Float](n int) *pow2Plan[T] {
	p := &pow2Plan[T]{
		n:       n,
		tw:      make([]T, 2*n),
		scratch: make([]T, 2*n),
	}
	for j := 0; j < n; j++ {
		ang := 2 * math.Pi * float64(j) / float64(n)
		p.tw[2*j] = T(math.Cos(ang))
		p.tw[2*j+1] = T(math.Sin(ang))
	}
	return p
}

// complexTransform runs the unscaled transform of n interleaved complex
// values in place. isign -1 is the forward direction, +1 the inverse.
func (p *pow2Plan[T]) complexTransform(a []T, isign int) error {
	return p.transform(a, p.n, isign)
}

// transform runs an m-point transform on a[:2m], m a power of two
// dividing n. Large inputs fan the four top-level quarters out to the
// worker pool and split the top combine by output index.
func (p *pow2Plan[T]) transform(a []T, m, isign int) error {
	if m == 1 {
		return nil
	}
	if m >= 16 && 2*m >= parallel.Threshold1D() && parallel.Workers() > 1 {
		q := m / 4
		err := parallel.Run(4, func(r int) error {
			p.rec(p.scratch, 2*q*r, a, segment{off: 2 * r, n: q, stride: 4}, isign)
			return nil
		})
		if err != nil {
			return err
		}
		err = parallel.For(q, 1024, func(lo, hi int) error {
			p.combine4(p.scratch, 0, m, isign, lo, hi)
			return nil
		})
		if err != nil {
			return err
		}
	} else {
		p.rec(p.scratch, 0, a, segment{off: 0, n: m, stride: 1}, isign)
	}
	copy(a[:2*m], p.scratch[:2*m])
	return nil
}

func (p *pow2Plan[T]) rec(dst []T, dOff int, src []T, s segment, isign int) {
	st := 2 * s.stride
	switch s.n {
	case 1:
		dst[dOff] = src[s.off]
		dst[dOff+1] = src[s.off+1]
		return
	case 2:
		ar, ai := src[s.off], src[s.off+1]
		br, bi := src[s.off+st], src[s.off+st+1]
		dst[dOff] = ar + br
		dst[dOff+1] = ai + bi
		dst[dOff+2] = ar - br
		dst[dOff+3] = ai - bi
		return
	case 4:
		x0r, x0i := src[s.off], src[s.off+1]
		x1r, x1i := src[s.off+st], src[s.off+st+1]
		x2r, x2i := src[s.off+2*st], src[s.off+2*st+1]
		x3r, x3i := src[s.off+3*st], src[s.off+3*st+1]
		t02pr, t02pi := x0r+x2r, x0i+x2i
		t02mr, t02mi := x0r-x2r, x0i-x2i
		t13pr, t13pi := x1r+x3r, x1i+x3i
		t13mr, t13mi := x1r-x3r, x1i-x3i
		sign := T(isign)
		jr := -sign * t13mi
		ji := sign * t13mr
		dst[dOff] = t02pr + t13pr
		dst[dOff+1] = t02pi + t13pi
		dst[dOff+2] = t02mr + jr
		dst[dOff+3] = t02mi + ji
		dst[dOff+4] = t02pr - t13pr
		dst[dOff+5] = t02pi - t13pi
		dst[dOff+6] = t02mr - jr
		dst[dOff+7] = t02mi - ji
		return
	}
	q := s.n / 4
	child := segment{n: q, stride: s.stride * 4}
	for r := 0; r < 4; r++ {
		child.off = s.off + st*r
		p.rec(dst, dOff+2*q*r, src, child, isign)
	}
	p.combine4(dst, dOff, s.n, isign, 0, q)
}

// combine4 merges four adjacent quarter transforms of the given size in
// dst into one, for output indices [lo, hi) of each quarter.
func (p *pow2Plan[T]) combine4(dst []T, off, size, isign, lo, hi int) {
	q := size / 4
	step := p.n / size
	sign := T(isign)
	for k := lo; k < hi; k++ {
		j := k * step
		w1r, w1i := p.tw[2*j], sign*p.tw[2*j+1]
		w2r, w2i := p.tw[4*j], sign*p.tw[4*j+1]
		w3r, w3i := p.tw[6*j], sign*p.tw[6*j+1]
		i0 := off + 2*k
		i1 := i0 + 2*q
		i2 := i1 + 2*q
		i3 := i2 + 2*q
		x0r, x0i := dst[i0], dst[i0+1]
		x1r, x1i := dst[i1], dst[i1+1]
		x2r, x2i := dst[i2], dst[i2+1]
		x3r, x3i := dst[i3], dst[i3+1]
		a1r := w1r*x1r - w1i*x1i
		a1i := w1r*x1i + w1i*x1r
		a2r := w2r*x2r - w2i*x2i
		a2i := w2r*x2i + w2i*x2r
		a3r := w3r*x3r - w3i*x3i
		a3i := w3r*x3i + w3i*x3r
		t02pr, t02pi := x0r+a2r, x0i+a2i
		t02mr, t02mi := x0r-a2r, x0i-a2i
		t13pr, t13pi := a1r+a3r, a1i+a3i
		t13mr, t13mi := a1r-a3r, a1i-a3i
		jr := -sign * t13mi
		ji := sign * t13mr
		dst[i0] = t02pr + t13pr
		dst[i0+1] = t02pi + t13pi
		dst[i1] = t02mr + jr
		dst[i1+1] = t02mi + ji
		dst[i2] = t02pr - t13pr
		dst[i2+1] = t02pi - t13pi
		dst[i3] = t02mr - jr
		dst[i3+1] = t02mi - ji
	}
}

// realForward transforms n real values in place into the packed
// half spectrum: a[0] = Re[0], a[1] = Re[n/2], a[2k] = Re[k],
// a[2k+1] = Im[k] for 0 < k < n/2.
//
// The n values are read as n/2 interleaved complex points, transformed,
// and the even/odd subspectra separated with one twiddle per bin.
func (p *pow2Plan[T]) realForward(a []T) error {
	m := p.n / 2
	if err := p.transform(a, m, -1); err != nil {
		return err
	}
	half := m / 2
	for k := 1; k < half; k++ {
		mk := m - k
		zkr, zki := a[2*k], a[2*k+1]
		zmr, zmi := a[2*mk], a[2*mk+1]
		er := (zkr + zmr) / 2
		ei := (zki - zmi) / 2
		or := (zki + zmi) / 2
		oi := (zmr - zkr) / 2
		c, s := p.tw[2*k], p.tw[2*k+1]
		tr := c*or + s*oi
		ti := c*oi - s*or
		a[2*k] = er + tr
		a[2*k+1] = ei + ti
		a[2*mk] = er - tr
		a[2*mk+1] = ti - ei
	}
	if m >= 2 {
		a[m+1] = -a[m+1]
	}
	xr, xi := a[0], a[1]
	a[0] = xr + xi
	a[1] = xr - xi
	return nil
}

// realInverse undoes realForward up to a factor of n/2 which the caller
// removes when scaling is requested.
func (p *pow2Plan[T]) realInverse(a []T) error {
	m := p.n / 2
	t := (a[0] - a[1]) / 2
	a[0] -= t
	a[1] = t
	half := m / 2
	for k := 1; k < half; k++ {
		mk := m - k
		x1r, x1i := a[2*k], a[2*k+1]
		x2r, x2i := a[2*mk], a[2*mk+1]
		er := (x1r + x2r) / 2
		ei := (x1i - x2i) / 2
		tr := (x1r - x2r) / 2
		ti := (x1i + x2i) / 2
		c, s := p.tw[2*k], p.tw[2*k+1]
		or := c*tr - s*ti
		oi := c*ti + s*tr
		a[2*k] = er - oi
		a[2*k+1] = ei + or
		a[2*mk] = er + oi
		a[2*mk+1] = or - ei
	}
	if m >= 2 {
		a[m+1] = -a[m+1]
	}
	return p.transform(a, m, +1)
}

// mirrorSpectrum expands the packed half spectrum in a[:n] into the
// full conjugate-symmetric 2n layout. Afterwards a[1] and a[n+1] carry
// the zero imaginary parts of the DC and Nyquist bins and a[n] the
// Nyquist real part.
func (p *pow2Plan[T]) mirrorSpectrum(a []T) error {
	n := p.n
	twon := 2 * n
	err := parallel.For(n/2, parallel.Threshold1D(), func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			idx1 := 2 * k
			idx2 := (twon - idx1) % twon
			a[idx2] = a[idx1]
			a[idx2+1] = -a[idx1+1]
		}
		return nil
	})
	if err != nil {
		return err
	}
	a[n] = -a[1]
	a[1] = 0
	a[n+1] = 0
	return nil
}

func (p *pow2Plan[T]) realForwardFull(a []T) error {
	if err := p.realForward(a); err != nil {
		return err
	}
	return p.mirrorSpectrum(a)
}

// realInverseFull writes the spectrum of the positive-exponent
// transform, the conjugate of realForwardFull bin by bin.
func (p *pow2Plan[T]) realInverseFull(a []T, scale bool) error {
	n := p.n
	if err := p.realForward(a); err != nil {
		return err
	}
	for k := 1; k < n/2; k++ {
		a[2*k+1] = -a[2*k+1]
	}
	if scale {
		if err := Scale(a, n, T(n)); err != nil {
			return err
		}
	}
	return p.mirrorSpectrum(a)
}
