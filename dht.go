package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/internal/fft"
)

// DHT computes the in-place 1D discrete Hartley transform
//
//	H[k] = sum_j a[j] * (cos(2*pi*j*k/n) + sin(2*pi*j*k/n))
//
// for any length n >= 1. The transform is its own inverse up to a
// factor of n.
type DHT[T Float] struct {
	n       int
	plan    *fft.Plan[T]
	scratch []T
}

// NewDHT builds a Hartley plan for length n >= 1.
func NewDHT[T Float](n int) (*DHT[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidLength, n)
	}
	return &DHT[T]{
		n:       n,
		plan:    fft.NewPlan[T](n),
		scratch: make([]T, n),
	}, nil
}

// N returns the transform length.
func (d *DHT[T]) N() int { return d.n }

// Forward transforms a[:n] in place.
//
// The packed real FFT does the heavy lifting; each Hartley bin is then
// Re[k]-Im[k] with its mirror Re[k]+Im[k]. The recombination reads and
// writes overlapping positions, hence the scratch pass.
func (d *DHT[T]) Forward(a []T) error {
	if len(a) < d.n {
		return fmt.Errorf("%w: len=%d, need %d", ErrShortSlice, len(a), d.n)
	}
	n := d.n
	if n == 1 {
		return nil
	}
	if err := d.plan.RealForward(a); err != nil {
		return err
	}
	b := d.scratch
	b[0] = a[0]
	if n%2 == 0 {
		m := n / 2
		for k := 1; k < m; k++ {
			re, im := a[2*k], a[2*k+1]
			b[k] = re - im
			b[n-k] = re + im
		}
		b[m] = a[1]
	} else {
		m := (n - 1) / 2
		for k := 1; k < m; k++ {
			re, im := a[2*k], a[2*k+1]
			b[k] = re - im
			b[n-k] = re + im
		}
		if m >= 1 {
			re, im := a[n-1], a[1]
			b[m] = re - im
			b[n-m] = re + im
		}
	}
	copy(a[:n], b)
	return nil
}

// Inverse transforms a[:n] in place. The Hartley transform is an
// involution, so this is Forward followed by an optional division
// by n.
func (d *DHT[T]) Inverse(a []T, scale bool) error {
	if err := d.Forward(a); err != nil {
		return err
	}
	if scale {
		return fft.Scale(a, d.n, T(d.n))
	}
	return nil
}
