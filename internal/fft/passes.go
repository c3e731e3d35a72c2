package fft

import (
	"math"

	"github.com/cwbudde/algo-spectral/internal/fftypes"
)

// Rotation constants for the small-radix butterflies.
const (
	tau3r = -0.5
	tau3i = 0.866025403784438646763723170752936183
	tr11  = 0.309016994374947424102293417182819059
	ti11  = 0.951056516295153572116439333379382143
	tr12  = -0.809016994374947424102293417182819059
	ti12  = 0.587785252292473129168705954639072769
)

// complexPass advances one decomposition level, reading in and writing
// out. ido counts interleaved values per butterfly row (twice the
// complex count), offset indexes the twiddle region and isign selects
// the direction.
type complexPass[T fftypes.Float] func(p *mixedPlan[T], ido, l1 int, in []T, inOff int, out []T, outOff, offset, isign int)

// complexPassFor returns the specialized butterfly for the factor, or
// nil when the general kernel must run.
func complexPassFor[T fftypes.Float](ip int) complexPass[T] {
	switch ip {
	case 2:
		return (*mixedPlan[T]).passf2
	case 3:
		return (*mixedPlan[T]).passf3
	case 4:
		return (*mixedPlan[T]).passf4
	case 5:
		return (*mixedPlan[T]).passf5
	}
	return nil
}

func (p *mixedPlan[T]) passf2(ido, l1 int, in []T, inOff int, out []T, outOff, offset, isign int) {
	iw1 := offset
	idx := ido * l1
	if ido <= 2 {
		for k := 0; k < l1; k++ {
			idx0 := k * ido
			oidx1 := outOff + idx0
			oidx2 := oidx1 + idx
			iidx1 := inOff + 2*idx0
			iidx2 := iidx1 + ido
			a1r, a1i := in[iidx1], in[iidx1+1]
			a2r, a2i := in[iidx2], in[iidx2+1]

			out[oidx1] = a1r + a2r
			out[oidx1+1] = a1i + a2i
			out[oidx2] = a1r - a2r
			out[oidx2+1] = a1i - a2i
		}
		return
	}
	for k := 0; k < l1; k++ {
		for i := 0; i < ido-1; i += 2 {
			idx0 := k * ido
			oidx1 := outOff + i + idx0
			oidx2 := oidx1 + idx
			iidx1 := inOff + i + 2*idx0
			iidx2 := iidx1 + ido
			widx1 := i + iw1
			a1r, a1i := in[iidx1], in[iidx1+1]
			a2r, a2i := in[iidx2], in[iidx2+1]

			out[oidx1] = a1r + a2r
			out[oidx1+1] = a1i + a2i

			t1r := a1r - a2r
			t1i := a1i - a2i
			w1r := p.wtable[widx1]
			w1i := T(isign) * p.wtable[widx1+1]

			out[oidx2] = w1r*t1r - w1i*t1i
			out[oidx2+1] = w1r*t1i + w1i*t1r
		}
	}
}

func (p *mixedPlan[T]) passf3(ido, l1 int, in []T, inOff int, out []T, outOff, offset, isign int) {
	taur := T(tau3r)
	taui := T(tau3i)
	iw1 := offset
	iw2 := iw1 + ido
	idxt := l1 * ido

	if ido == 2 {
		for k := 1; k <= l1; k++ {
			idx1 := inOff + (3*k-2)*ido
			idx2 := idx1 + ido
			idx3 := idx1 - ido
			idx4 := outOff + (k-1)*ido
			idx5 := idx4 + idxt
			idx6 := idx5 + idxt
			a1r, a1i := in[idx1], in[idx1+1]
			a2r, a2i := in[idx2], in[idx2+1]
			a3r, a3i := in[idx3], in[idx3+1]

			tr2 := a1r + a2r
			cr2 := a3r + taur*tr2
			out[idx4] = a3r + tr2

			ti2 := a1i + a2i
			ci2 := a3i + taur*ti2
			out[idx4+1] = a3i + ti2

			cr3 := T(isign) * taui * (a1r - a2r)
			ci3 := T(isign) * taui * (a1i - a2i)
			out[idx5] = cr2 - ci3
			out[idx6] = cr2 + ci3
			out[idx5+1] = ci2 + cr3
			out[idx6+1] = ci2 - cr3
		}
		return
	}
	for k := 1; k <= l1; k++ {
		for i := 0; i < ido-1; i += 2 {
			idx1 := inOff + i + (3*k-2)*ido
			idx2 := idx1 + ido
			idx3 := idx1 - ido
			idx4 := outOff + i + (k-1)*ido
			idx5 := idx4 + idxt
			idx6 := idx5 + idxt
			idx7 := i + iw1
			idx8 := i + iw2

			a1r, a1i := in[idx1], in[idx1+1]
			a2r, a2i := in[idx2], in[idx2+1]
			a3r, a3i := in[idx3], in[idx3+1]

			tr2 := a1r + a2r
			cr2 := a3r + taur*tr2
			out[idx4] = a3r + tr2
			ti2 := a1i + a2i
			ci2 := a3i + taur*ti2
			out[idx4+1] = a3i + ti2
			cr3 := T(isign) * taui * (a1r - a2r)
			ci3 := T(isign) * taui * (a1i - a2i)
			dr2 := cr2 - ci3
			dr3 := cr2 + ci3
			di2 := ci2 + cr3
			di3 := ci2 - cr3
			w1r := p.wtable[idx7]
			w1i := T(isign) * p.wtable[idx7+1]
			w2r := p.wtable[idx8]
			w2i := T(isign) * p.wtable[idx8+1]
			out[idx5+1] = w1r*di2 + w1i*dr2
			out[idx5] = w1r*dr2 - w1i*di2
			out[idx6+1] = w2r*di3 + w2i*dr3
			out[idx6] = w2r*dr3 - w2i*di3
		}
	}
}

func (p *mixedPlan[T]) passf4(ido, l1 int, in []T, inOff int, out []T, outOff, offset, isign int) {
	iw1 := offset
	iw2 := iw1 + ido
	iw3 := iw2 + ido
	sign := T(isign)
	idxt2 := l1 * ido

	if ido == 2 {
		for k := 0; k < l1; k++ {
			idxt1 := k * ido
			idx1 := inOff + 4*idxt1 + 1
			idx2 := idx1 + ido
			idx3 := idx2 + ido
			idx4 := idx3 + ido
			idx5 := outOff + idxt1
			idx6 := idx5 + idxt2
			idx7 := idx6 + idxt2
			idx8 := idx7 + idxt2

			a1r, a1i := in[idx1], in[idx1-1]
			a2r, a2i := in[idx2], in[idx2-1]
			a3r, a3i := in[idx3], in[idx3-1]
			a4r, a4i := in[idx4], in[idx4-1]

			ti1 := a1r - a3r
			ti2 := a1r + a3r
			tr4 := a4r - a2r
			ti3 := a2r + a4r
			tr1 := a1i - a3i
			tr2 := a1i + a3i
			ti4 := a2i - a4i
			tr3 := a2i + a4i
			out[idx5] = tr2 + tr3
			out[idx7] = tr2 - tr3
			out[idx5+1] = ti2 + ti3
			out[idx7+1] = ti2 - ti3
			out[idx6] = tr1 + sign*tr4
			out[idx8] = tr1 - sign*tr4
			out[idx6+1] = ti1 + sign*ti4
			out[idx8+1] = ti1 - sign*ti4
		}
		return
	}
	for k := 0; k < l1; k++ {
		for i := 0; i < ido-1; i += 2 {
			idxt1 := k * ido
			idx1 := inOff + i + 1 + 4*idxt1
			idx2 := idx1 + ido
			idx3 := idx2 + ido
			idx4 := idx3 + ido
			idx5 := outOff + i + idxt1
			idx6 := idx5 + idxt2
			idx7 := idx6 + idxt2
			idx8 := idx7 + idxt2
			idx9 := i + iw1
			idx10 := i + iw2
			idx11 := i + iw3

			a1r, a1i := in[idx1], in[idx1-1]
			a2r, a2i := in[idx2], in[idx2-1]
			a3r, a3i := in[idx3], in[idx3-1]
			a4r, a4i := in[idx4], in[idx4-1]

			ti1 := a1r - a3r
			ti2 := a1r + a3r
			ti3 := a2r + a4r
			tr4 := a4r - a2r
			tr1 := a1i - a3i
			tr2 := a1i + a3i
			ti4 := a2i - a4i
			tr3 := a2i + a4i

			out[idx5] = tr2 + tr3
			cr3 := tr2 - tr3
			out[idx5+1] = ti2 + ti3
			ci3 := ti2 - ti3
			cr2 := tr1 + sign*tr4
			cr4 := tr1 - sign*tr4
			ci2 := ti1 + sign*ti4
			ci4 := ti1 - sign*ti4
			w1r := p.wtable[idx9]
			w1i := sign * p.wtable[idx9+1]
			w2r := p.wtable[idx10]
			w2i := sign * p.wtable[idx10+1]
			w3r := p.wtable[idx11]
			w3i := sign * p.wtable[idx11+1]

			out[idx6] = w1r*cr2 - w1i*ci2
			out[idx6+1] = w1r*ci2 + w1i*cr2
			out[idx7] = w2r*cr3 - w2i*ci3
			out[idx7+1] = w2r*ci3 + w2i*cr3
			out[idx8] = w3r*cr4 - w3i*ci4
			out[idx8+1] = w3r*ci4 + w3i*cr4
		}
	}
}

func (p *mixedPlan[T]) passf5(ido, l1 int, in []T, inOff int, out []T, outOff, offset, isign int) {
	c11r := T(tr11)
	c11i := T(ti11)
	c12r := T(tr12)
	c12i := T(ti12)
	sign := T(isign)
	iw1 := offset
	iw2 := iw1 + ido
	iw3 := iw2 + ido
	iw4 := iw3 + ido
	idxt2 := l1 * ido

	if ido == 2 {
		for k := 1; k <= l1; k++ {
			idx1 := inOff + (5*k-4)*ido + 1
			idx2 := idx1 + ido
			idx3 := idx1 - ido
			idx4 := idx2 + ido
			idx5 := idx4 + ido
			idx6 := outOff + (k-1)*ido
			idx7 := idx6 + idxt2
			idx8 := idx7 + idxt2
			idx9 := idx8 + idxt2
			idx10 := idx9 + idxt2

			a1r, a1i := in[idx1], in[idx1-1]
			a2r, a2i := in[idx2], in[idx2-1]
			a3r, a3i := in[idx3], in[idx3-1]
			a4r, a4i := in[idx4], in[idx4-1]
			a5r, a5i := in[idx5], in[idx5-1]

			ti5 := a1r - a5r
			ti2 := a1r + a5r
			ti4 := a2r - a4r
			ti3 := a2r + a4r
			tr5 := a1i - a5i
			tr2 := a1i + a5i
			tr4 := a2i - a4i
			tr3 := a2i + a4i
			out[idx6] = a3i + tr2 + tr3
			out[idx6+1] = a3r + ti2 + ti3
			cr2 := a3i + c11r*tr2 + c12r*tr3
			ci2 := a3r + c11r*ti2 + c12r*ti3
			cr3 := a3i + c12r*tr2 + c11r*tr3
			ci3 := a3r + c12r*ti2 + c11r*ti3
			cr5 := sign * (c11i*tr5 + c12i*tr4)
			ci5 := sign * (c11i*ti5 + c12i*ti4)
			cr4 := sign * (c12i*tr5 - c11i*tr4)
			ci4 := sign * (c12i*ti5 - c11i*ti4)
			out[idx7] = cr2 - ci5
			out[idx10] = cr2 + ci5
			out[idx7+1] = ci2 + cr5
			out[idx8+1] = ci3 + cr4
			out[idx8] = cr3 - ci4
			out[idx9] = cr3 + ci4
			out[idx9+1] = ci3 - cr4
			out[idx10+1] = ci2 - cr5
		}
		return
	}
	for k := 1; k <= l1; k++ {
		for i := 0; i < ido-1; i += 2 {
			idx1 := inOff + i + 1 + (k*5-4)*ido
			idx2 := idx1 + ido
			idx3 := idx1 - ido
			idx4 := idx2 + ido
			idx5 := idx4 + ido
			idx6 := outOff + i + (k-1)*ido
			idx7 := idx6 + idxt2
			idx8 := idx7 + idxt2
			idx9 := idx8 + idxt2
			idx10 := idx9 + idxt2
			idx11 := i + iw1
			idx12 := i + iw2
			idx13 := i + iw3
			idx14 := i + iw4

			a1r, a1i := in[idx1], in[idx1-1]
			a2r, a2i := in[idx2], in[idx2-1]
			a3r, a3i := in[idx3], in[idx3-1]
			a4r, a4i := in[idx4], in[idx4-1]
			a5r, a5i := in[idx5], in[idx5-1]

			ti5 := a1r - a5r
			ti2 := a1r + a5r
			ti4 := a2r - a4r
			ti3 := a2r + a4r
			tr5 := a1i - a5i
			tr2 := a1i + a5i
			tr4 := a2i - a4i
			tr3 := a2i + a4i
			out[idx6] = a3i + tr2 + tr3
			out[idx6+1] = a3r + ti2 + ti3
			cr2 := a3i + c11r*tr2 + c12r*tr3
			ci2 := a3r + c11r*ti2 + c12r*ti3
			cr3 := a3i + c12r*tr2 + c11r*tr3
			ci3 := a3r + c12r*ti2 + c11r*ti3
			cr5 := sign * (c11i*tr5 + c12i*tr4)
			ci5 := sign * (c11i*ti5 + c12i*ti4)
			cr4 := sign * (c12i*tr5 - c11i*tr4)
			ci4 := sign * (c12i*ti5 - c11i*ti4)
			dr3 := cr3 - ci4
			dr4 := cr3 + ci4
			di3 := ci3 + cr4
			di4 := ci3 - cr4
			dr5 := cr2 + ci5
			dr2 := cr2 - ci5
			di5 := ci2 - cr5
			di2 := ci2 + cr5
			w1r := p.wtable[idx11]
			w1i := sign * p.wtable[idx11+1]
			w2r := p.wtable[idx12]
			w2i := sign * p.wtable[idx12+1]
			w3r := p.wtable[idx13]
			w3i := sign * p.wtable[idx13+1]
			w4r := p.wtable[idx14]
			w4i := sign * p.wtable[idx14+1]

			out[idx7] = w1r*dr2 - w1i*di2
			out[idx7+1] = w1r*di2 + w1i*dr2
			out[idx8] = w2r*dr3 - w2i*di3
			out[idx8+1] = w2r*di3 + w2i*dr3
			out[idx9] = w3r*dr4 - w3i*di4
			out[idx9+1] = w3r*di4 + w3i*dr4
			out[idx10] = w4r*dr5 - w4i*di5
			out[idx10+1] = w4r*di5 + w4i*dr5
		}
	}
}

// passfg handles any remaining factor by explicit DFT recombination.
// The return value reports whether the result landed in ch (1) or was
// written back into a (0), mirroring the ping-pong bookkeeping of the
// specialized kernels.
func (p *mixedPlan[T]) passfg(ido, ip, l1, idl1 int, a []T, offa int, ch []T, offch, offset, isign int) int {
	iw1 := offset
	idot := ido / 2
	ipph := (ip + 1) / 2
	idp := ip * ido

	if ido >= l1 {
		for j := 1; j < ipph; j++ {
			jc := ip - j
			idxt1 := j * ido
			idxt2 := jc * ido
			for k := 0; k < l1; k++ {
				idxt0 := k * ido
				idxt3 := idxt0 + idxt1*l1
				idxt4 := idxt0 + idxt2*l1
				idxt5 := idxt0 * ip
				for i := 0; i < ido; i++ {
					idx1 := offa + i + idxt1 + idxt5
					idx2 := offa + i + idxt2 + idxt5
					idx3 := offch + i
					ch[idx3+idxt3] = a[idx1] + a[idx2]
					ch[idx3+idxt4] = a[idx1] - a[idx2]
				}
			}
		}
		for k := 0; k < l1; k++ {
			idxt1 := k * ido
			idxt2 := idxt1 * ip
			for i := 0; i < ido; i++ {
				ch[offch+i+idxt1] = a[offa+i+idxt2]
			}
		}
	} else {
		for j := 1; j < ipph; j++ {
			jc := ip - j
			idxt1 := j * l1 * ido
			idxt2 := jc * l1 * ido
			idxt3 := j * ido
			idxt4 := jc * ido
			for i := 0; i < ido; i++ {
				for k := 0; k < l1; k++ {
					idxt5 := k * ido
					idxt6 := idxt5 * ip
					idx7 := offch + i
					idx8 := offa + i
					ch[idx7+idxt5+idxt1] = a[idx8+idxt3+idxt6] + a[idx8+idxt4+idxt6]
					ch[idx7+idxt5+idxt2] = a[idx8+idxt3+idxt6] - a[idx8+idxt4+idxt6]
				}
			}
		}
		for i := 0; i < ido; i++ {
			for k := 0; k < l1; k++ {
				idxt1 := k * ido
				ch[offch+i+idxt1] = a[offa+i+idxt1*ip]
			}
		}
	}

	idl := 2 - ido
	inc := 0
	idxt0 := (ip - 1) * idl1
	for l := 1; l < ipph; l++ {
		lc := ip - l
		idl += ido
		idxt1 := l * idl1
		idxt2 := lc * idl1
		idxt3 := idl + iw1
		w1r := p.wtable[idxt3-2]
		w1i := T(isign) * p.wtable[idxt3-1]
		for ik := 0; ik < idl1; ik++ {
			idx1 := offa + ik
			idx2 := offch + ik
			a[idx1+idxt1] = ch[idx2] + w1r*ch[idx2+idl1]
			a[idx1+idxt2] = w1i * ch[idx2+idxt0]
		}
		idlj := idl
		inc += ido
		for j := 2; j < ipph; j++ {
			jc := ip - j
			idlj += inc
			if idlj > idp {
				idlj -= idp
			}
			idxt4 := idlj + iw1
			w2r := p.wtable[idxt4-2]
			w2i := T(isign) * p.wtable[idxt4-1]
			idxt5 := j * idl1
			idxt6 := jc * idl1
			for ik := 0; ik < idl1; ik++ {
				idx1 := offa + ik
				idx2 := offch + ik
				a[idx1+idxt1] += w2r * ch[idx2+idxt5]
				a[idx1+idxt2] += w2i * ch[idx2+idxt6]
			}
		}
	}
	for j := 1; j < ipph; j++ {
		idxt1 := j * idl1
		for ik := 0; ik < idl1; ik++ {
			idx1 := offch + ik
			ch[idx1] += ch[idx1+idxt1]
		}
	}
	for j := 1; j < ipph; j++ {
		jc := ip - j
		idx1 := j * idl1
		idx2 := jc * idl1
		for ik := 1; ik < idl1; ik += 2 {
			idx3 := offch + ik
			idx4 := offa + ik
			ch[idx3-1+idx1] = a[idx4-1+idx1] - a[idx4+idx2]
			ch[idx3-1+idx2] = a[idx4-1+idx1] + a[idx4+idx2]
			ch[idx3+idx1] = a[idx4+idx1] + a[idx4-1+idx2]
			ch[idx3+idx2] = a[idx4+idx1] - a[idx4-1+idx2]
		}
	}
	if ido == 2 {
		return 1
	}
	copy(a[offa:offa+idl1], ch[offch:offch+idl1])
	idx0 := l1 * ido
	for j := 1; j < ip; j++ {
		idx2 := j * idx0
		for k := 0; k < l1; k++ {
			idx5 := k * ido
			idx3 := offch + idx5
			idx4 := offa + idx5
			a[idx4+idx2] = ch[idx3+idx2]
			a[idx4+idx2+1] = ch[idx3+idx2+1]
		}
	}
	if idot <= l1 {
		idij := 0
		for j := 1; j < ip; j++ {
			idij += 2
			idx1 := j * l1 * ido
			for i := 3; i < ido; i += 2 {
				idij += 2
				idx2 := idij + iw1 - 1
				w1r := p.wtable[idx2-1]
				w1i := T(isign) * p.wtable[idx2]
				for k := 0; k < l1; k++ {
					idx3 := offa + i + k*ido
					idx4 := offch + i + k*ido
					a[idx3-1+idx1] = w1r*ch[idx4-1+idx1] - w1i*ch[idx4+idx1]
					a[idx3+idx1] = w1r*ch[idx4+idx1] + w1i*ch[idx4-1+idx1]
				}
			}
		}
	} else {
		idj := 2 - ido
		for j := 1; j < ip; j++ {
			idj += ido
			idx1 := j * l1 * ido
			for k := 0; k < l1; k++ {
				idij := idj
				for i := 3; i < ido; i += 2 {
					idij += 2
					idx2 := idij - 1 + iw1
					idx3 := offa + i + k*ido
					idx4 := offch + i + k*ido
					w1r := p.wtable[idx2-1]
					w1i := T(isign) * p.wtable[idx2]
					a[idx3-1+idx1] = w1r*ch[idx4-1+idx1] - w1i*ch[idx4+idx1]
					a[idx3+idx1] = w1r*ch[idx4+idx1] + w1i*ch[idx4-1+idx1]
				}
			}
		}
	}
	return 0
}

// rotation returns cos/sin of 2*pi/ip for the general real kernels.
func rotation(ip int) (float64, float64) {
	arg := 2 * math.Pi / float64(ip)
	return math.Cos(arg), math.Sin(arg)
}
