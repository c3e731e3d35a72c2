package fft

import (
	"math"

	"github.com/cwbudde/algo-spectral/internal/fftypes"
)

// mixedPlan is the engine for lengths that are not powers of two, a port
// of the classic fftpack decomposition. The twiddle tables keep the
// historical layout: the complex table is 4n long with twiddles in
// [2n,4n), the real table is 2n long with twiddles in [n,2n). The kernel
// index arithmetic depends on those offsets.
type mixedPlan[T fftypes.Float] struct {
	n       int
	factors []int
	wtable  []T
	wtableR []T
	ch      []T
}

func newMixedPlan[T fftypes.Float](n int) *mixedPlan[T] {
	p := &mixedPlan[T]{
		n:       n,
		factors: factorize(n),
		wtable:  make([]T, 4*n),
		wtableR: make([]T, 2*n),
		ch:      make([]T, 2*n),
	}
	p.initComplexTable()
	p.initRealTable()
	return p
}

func (p *mixedPlan[T]) initComplexTable() {
	n := p.n
	twon := 2 * n
	argh := 2 * math.Pi / float64(n)
	i := 1
	l1 := 1
	for _, ip := range p.factors {
		ld := 0
		l2 := l1 * ip
		ido := n / l2
		idot := ido + ido + 2
		for j := 1; j <= ip-1; j++ {
			i1 := i
			p.wtable[i-1+twon] = 1
			p.wtable[i+twon] = 0
			ld += l1
			fi := 0.0
			argld := float64(ld) * argh
			for ii := 4; ii <= idot; ii += 2 {
				i += 2
				fi++
				arg := fi * argld
				p.wtable[i-1+twon] = T(math.Cos(arg))
				p.wtable[i+twon] = T(math.Sin(arg))
			}
			if ip > 5 {
				p.wtable[i1-1+twon] = p.wtable[i-1+twon]
				p.wtable[i1+twon] = p.wtable[i+twon]
			}
		}
		l1 = l2
	}
}

func (p *mixedPlan[T]) initRealTable() {
	n := p.n
	argh := 2 * math.Pi / float64(n)
	is := 0
	l1 := 1
	for k1 := 1; k1 < len(p.factors); k1++ {
		ip := p.factors[k1-1]
		ld := 0
		l2 := l1 * ip
		ido := n / l2
		for j := 1; j <= ip-1; j++ {
			ld += l1
			i := is
			argld := float64(ld) * argh
			fi := 0.0
			for ii := 3; ii <= ido; ii += 2 {
				i += 2
				fi++
				arg := fi * argld
				p.wtableR[i+n-2] = T(math.Cos(arg))
				p.wtableR[i+n-1] = T(math.Sin(arg))
			}
			is += ido
		}
		l1 = l2
	}
}

// factorize splits n into the classic factor order, preferring 4 then
// 2, 3, 5 and then ascending odd candidates. A factor 2 found after the
// first position is moved to the front, matching the table builder the
// kernels were written against.
func factorize(n int) []int {
	var f []int
	preferred := [4]int{4, 2, 3, 5}
	nl := n
	j := 0
	ntry := 0
	for nl != 1 {
		if j < len(preferred) {
			ntry = preferred[j]
		} else {
			ntry += 2
		}
		j++
		for nl%ntry == 0 {
			nl /= ntry
			f = append(f, ntry)
			if ntry == 2 && len(f) > 1 {
				copy(f[1:], f[:len(f)-1])
				f[0] = 2
			}
		}
	}
	return f
}

// cfft runs the mixed-radix complex transform in place. isign is -1 for
// the forward transform and +1 for the inverse. Passes ping-pong
// between a and the scratch buffer; an odd number of passes ends with a
// copy back.
func (p *mixedPlan[T]) cfft(a []T, isign int) {
	n := p.n
	twon := 2 * n
	ch := p.ch
	na := 0
	l1 := 1
	iw := twon
	for _, ip := range p.factors {
		l2 := ip * l1
		ido := n / l2
		idot := ido + ido
		idl1 := idot * l1
		if kern := complexPassFor[T](ip); kern != nil {
			if na == 0 {
				kern(p, idot, l1, a, 0, ch, 0, iw, isign)
			} else {
				kern(p, idot, l1, ch, 0, a, 0, iw, isign)
			}
			na = 1 - na
		} else {
			var nac int
			if na == 0 {
				nac = p.passfg(idot, ip, l1, idl1, a, 0, ch, 0, iw, isign)
			} else {
				nac = p.passfg(idot, ip, l1, idl1, ch, 0, a, 0, iw, isign)
			}
			if nac != 0 {
				na = 1 - na
			}
		}
		l1 = l2
		iw += (ip - 1) * idot
	}
	if na != 0 {
		copy(a[:twon], ch[:twon])
	}
}

// rfftf runs the real forward transform, leaving the spectrum in the
// interleaved-by-frequency order the real kernels produce. Factors are
// consumed in reverse with the twiddle cursor walking down the table.
func (p *mixedPlan[T]) rfftf(a []T) {
	n := p.n
	ch := p.ch
	nf := len(p.factors)
	na := 1
	l2 := n
	iw := 2*n - 1
	for k1 := 1; k1 <= nf; k1++ {
		ip := p.factors[nf-k1]
		l1 := l2 / ip
		ido := n / l2
		idl1 := ido * l1
		iw -= (ip - 1) * ido
		na = 1 - na
		if kern := realForwardPassFor[T](ip); kern != nil {
			if na == 0 {
				kern(p, ido, l1, a, 0, ch, 0, iw)
			} else {
				kern(p, ido, l1, ch, 0, a, 0, iw)
			}
		} else {
			if ido == 1 {
				na = 1 - na
			}
			if na == 0 {
				p.radfg(ido, ip, l1, idl1, a, 0, ch, 0, iw)
				na = 1
			} else {
				p.radfg(ido, ip, l1, idl1, ch, 0, a, 0, iw)
				na = 0
			}
		}
		l2 = l1
	}
	if na == 1 {
		return
	}
	copy(a[:n], ch[:n])
}

// rfftb runs the unscaled real inverse, consuming factors in forward
// order with the twiddle cursor walking up.
func (p *mixedPlan[T]) rfftb(a []T) {
	n := p.n
	ch := p.ch
	na := 0
	l1 := 1
	iw := n
	for _, ip := range p.factors {
		l2 := ip * l1
		ido := n / l2
		idl1 := ido * l1
		if kern := realBackwardPassFor[T](ip); kern != nil {
			if na == 0 {
				kern(p, ido, l1, a, 0, ch, 0, iw)
			} else {
				kern(p, ido, l1, ch, 0, a, 0, iw)
			}
			na = 1 - na
		} else {
			if na == 0 {
				p.radbg(ido, ip, l1, idl1, a, 0, ch, 0, iw)
			} else {
				p.radbg(ido, ip, l1, idl1, ch, 0, a, 0, iw)
			}
			if ido == 1 {
				na = 1 - na
			}
		}
		l1 = l2
		iw += (ip - 1) * ido
	}
	if na == 0 {
		return
	}
	copy(a[:n], ch[:n])
}

// realFull expands n real inputs into the full 2n spectrum. For the
// inverse direction the stored imaginary parts are negated, which turns
// the forward driver into the positive-exponent transform.
func (p *mixedPlan[T]) realFull(a []T, inverse bool) {
	n := p.n
	twon := 2 * n
	p.rfftf(a)
	m := n / 2
	if n%2 != 0 {
		m = (n + 1) / 2
	}
	if inverse {
		for k := 1; k < m; k++ {
			idx1 := 2 * k
			idx2 := twon - 2*k
			a[idx1] = -a[idx1]
			a[idx2+1] = -a[idx1]
			a[idx2] = a[idx1-1]
		}
	} else {
		for k := 1; k < m; k++ {
			idx1 := twon - 2*k
			idx2 := 2 * k
			a[idx1+1] = -a[idx2]
			a[idx1] = a[idx2-1]
		}
	}
	for k := 1; k < n; k++ {
		idx := n - k
		a[idx+1], a[idx] = a[idx], a[idx+1]
	}
	a[1] = 0
}
