package fft

import "github.com/cwbudde/algo-spectral/internal/fftypes"

const (
	hsqt2 = 0.707106781186547524400844362104849039
	sqrt2 = 1.41421356237309504880168872420969808
)

// realPass advances one decomposition level of the real transform.
// Unlike the complex passes, direction is baked into the kernel.
type realPass[T fftypes.Float] func(p *mixedPlan[T], ido, l1 int, in []T, inOff int, out []T, outOff, offset int)

func realForwardPassFor[T fftypes.Float](ip int) realPass[T] {
	switch ip {
	case 2:
		return (*mixedPlan[T]).radf2
	case 3:
		return (*mixedPlan[T]).radf3
	case 4:
		return (*mixedPlan[T]).radf4
	case 5:
		return (*mixedPlan[T]).radf5
	}
	return nil
}

func realBackwardPassFor[T fftypes.Float](ip int) realPass[T] {
	switch ip {
	case 2:
		return (*mixedPlan[T]).radb2
	case 3:
		return (*mixedPlan[T]).radb3
	case 4:
		return (*mixedPlan[T]).radb4
	case 5:
		return (*mixedPlan[T]).radb5
	}
	return nil
}

func (p *mixedPlan[T]) radf2(ido, l1 int, in []T, inOff int, out []T, outOff, offset int) {
	iw1 := offset
	idx0 := l1 * ido
	idx1 := 2 * ido
	for k := 0; k < l1; k++ {
		oidx1 := outOff + k*idx1
		oidx2 := oidx1 + idx1 - 1
		iidx1 := inOff + k*ido
		iidx2 := iidx1 + idx0
		out[oidx1] = in[iidx1] + in[iidx2]
		out[oidx2] = in[iidx1] - in[iidx2]
	}
	if ido < 2 {
		return
	}
	if ido != 2 {
		for k := 0; k < l1; k++ {
			idx1 := k * ido
			idx2 := 2 * idx1
			idx3 := idx2 + ido
			idx4 := idx1 + idx0
			for i := 2; i < ido; i += 2 {
				ic := ido - i
				widx1 := i - 1 + iw1
				oidx1 := outOff + i + idx2
				oidx2 := outOff + ic + idx3
				iidx1 := inOff + i + idx1
				iidx2 := inOff + i + idx4

				a1i := in[iidx1-1]
				a1r := in[iidx1]
				a2i := in[iidx2-1]
				a2r := in[iidx2]

				w1r := p.wtableR[widx1-1]
				w1i := p.wtableR[widx1]

				t1r := w1r*a2i + w1i*a2r
				t1i := w1r*a2r - w1i*a2i

				out[oidx1] = a1r + t1i
				out[oidx1-1] = a1i + t1r

				out[oidx2] = t1i - a1r
				out[oidx2-1] = a1i - t1r
			}
		}
		if ido%2 == 1 {
			return
		}
	}
	idx2 := 2 * ido
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		oidx1 := outOff + k*idx2 + ido
		iidx1 := inOff + ido - 1 + idx1

		out[oidx1] = -in[iidx1+idx0]
		out[oidx1-1] = in[iidx1]
	}
}

func (p *mixedPlan[T]) radb2(ido, l1 int, a []T, offa int, ch []T, offch, offset int) {
	iw1 := offset
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 2 * idx1
		idx3 := idx2 + ido
		ch[offch+idx1] = a[offa+idx2] + a[offa+ido-1+idx3]
		ch[offch+idx1+l1*ido] = a[offa+idx2] - a[offa+ido-1+idx3]
	}
	if ido < 2 {
		return
	}
	if ido != 2 {
		for k := 0; k < l1; k++ {
			idx1 := k * ido
			idx2 := 2 * idx1
			idx3 := idx2 + ido
			idx4 := (k + l1) * ido
			for i := 2; i < ido; i += 2 {
				ic := ido - i
				idx5 := i - 1 + iw1
				idx6 := offch + i
				idx7 := offa + i
				idx8 := offa + ic
				w1r := p.wtableR[idx5-1]
				w1i := p.wtableR[idx5]
				ch[idx6-1+idx1] = a[idx7-1+idx2] + a[idx8-1+idx3]
				tr2 := a[idx7-1+idx2] - a[idx8-1+idx3]
				ch[idx6+idx1] = a[idx7+idx2] - a[idx8+idx3]
				ti2 := a[idx7+idx2] + a[idx8+idx3]
				ch[idx6-1+idx4] = w1r*tr2 - w1i*ti2
				ch[idx6+idx4] = w1r*ti2 + w1i*tr2
			}
		}
		if ido%2 == 1 {
			return
		}
	}
	idx0 := l1 * ido
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 2 * idx1
		ch[offch+ido-1+idx1] = 2 * a[offa+ido-1+idx2]
		ch[offch+ido-1+idx1+idx0] = -2 * a[offa+idx2+ido]
	}
}

func (p *mixedPlan[T]) radf3(ido, l1 int, a []T, offa int, ch []T, offch, offset int) {
	taur := T(tau3r)
	taui := T(tau3i)
	iw1 := offset
	iw2 := iw1 + ido

	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := l1 * ido
		idx3 := 2 * idx2
		idx4 := (3*k + 1) * ido
		idx5 := offa + idx1
		cr2 := a[idx5+idx2] + a[idx5+idx3]
		ch[offch+3*idx1] = a[idx5] + cr2
		ch[offch+idx4+ido] = taui * (a[idx5+idx3] - a[idx5+idx2])
		ch[offch+ido-1+idx4] = a[idx5] + taur*cr2
	}
	if ido == 1 {
		return
	}
	for k := 0; k < l1; k++ {
		idx3 := k * ido
		idx4 := 3 * idx3
		idx5 := (k + l1) * ido
		idx6 := idx5 + l1*ido
		idx7 := (3*k + 1) * ido
		idx8 := idx7 + ido
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			idx1 := i - 1 + iw1
			idx2 := i - 1 + iw2
			w1r := p.wtableR[idx1-1]
			w1i := p.wtableR[idx1]
			w2r := p.wtableR[idx2-1]
			w2i := p.wtableR[idx2]
			idx9 := offa + i
			idx10 := offch + i
			idx11 := offch + ic

			dr2 := w1r*a[idx9-1+idx5] + w1i*a[idx9+idx5]
			di2 := w1r*a[idx9+idx5] - w1i*a[idx9-1+idx5]
			dr3 := w2r*a[idx9-1+idx6] + w2i*a[idx9+idx6]
			di3 := w2r*a[idx9+idx6] - w2i*a[idx9-1+idx6]
			cr2 := dr2 + dr3
			ci2 := di2 + di3
			ch[idx10-1+idx4] = a[idx9-1+idx3] + cr2
			ch[idx10+idx4] = a[idx9+idx3] + ci2
			tr2 := a[idx9-1+idx3] + taur*cr2
			ti2 := a[idx9+k*ido] + taur*ci2
			tr3 := taui * (di2 - di3)
			ti3 := taui * (dr3 - dr2)
			ch[idx10-1+idx8] = tr2 + tr3
			ch[idx11-1+idx7] = tr2 - tr3
			ch[idx10+idx8] = ti2 + ti3
			ch[idx11+idx7] = ti3 - ti2
		}
	}
}

func (p *mixedPlan[T]) radb3(ido, l1 int, a []T, offa int, ch []T, offch, offset int) {
	taur := T(tau3r)
	taui := T(tau3i)
	iw1 := offset
	iw2 := iw1 + ido

	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 3 * idx1
		idx4 := (3*k + 1) * ido
		tr2 := 2 * a[offa+ido-1+idx4]
		cr2 := a[offa+idx2] + taur*tr2
		ch[offch+idx1] = a[offa+idx2] + tr2
		ci3 := 2 * taui * a[offa+(3*k+2)*ido]
		ch[offch+(k+l1)*ido] = cr2 - ci3
		ch[offch+(k+2*l1)*ido] = cr2 + ci3
	}
	if ido == 1 {
		return
	}
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 3 * k * ido
		idx3 := (3*k + 1) * ido
		idx4 := (3*k + 2) * ido
		idx5 := (k + l1) * ido
		idx6 := (k + 2*l1) * ido
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			idx7 := offa + i
			idx8 := offa + ic
			idx9 := offch + i
			tr2 := a[idx7-1+idx4] + a[idx8-1+idx3]
			cr2 := a[idx7-1+idx2] + taur*tr2
			ch[offch+i-1+idx1] = a[idx7-1+idx2] + tr2
			ti2 := a[idx7+idx4] - a[idx8+idx3]
			ci2 := a[idx7+idx2] + taur*ti2
			ch[offch+i+idx1] = a[idx7+idx2] + ti2
			cr3 := taui * (a[idx7-1+idx4] - a[idx8-1+idx3])
			ci3 := taui * (a[idx7+idx4] + a[idx8+idx3])
			dr2 := cr2 - ci3
			dr3 := cr2 + ci3
			di2 := ci2 + cr3
			di3 := ci2 - cr3
			idx10 := i - 1 + iw1
			idx11 := i - 1 + iw2
			w1r := p.wtableR[idx10-1]
			w1i := p.wtableR[idx10]
			w2r := p.wtableR[idx11-1]
			w2i := p.wtableR[idx11]

			ch[idx9-1+idx5] = w1r*dr2 - w1i*di2
			ch[idx9+idx5] = w1r*di2 + w1i*dr2
			ch[idx9-1+idx6] = w2r*dr3 - w2i*di3
			ch[idx9+idx6] = w2r*di3 + w2i*dr3
		}
	}
}

func (p *mixedPlan[T]) radf4(ido, l1 int, a []T, offa int, ch []T, offch, offset int) {
	h := T(hsqt2)
	iw1 := offset
	iw2 := offset + ido
	iw3 := iw2 + ido
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 4 * idx1
		idx3 := (k + l1) * ido
		idx4 := idx3 + l1*ido
		idx5 := idx4 + l1*ido
		idx6 := idx2 + ido
		tr1 := a[offa+idx3] + a[offa+idx5]
		tr2 := a[offa+idx1] + a[offa+idx4]
		ch[offch+idx2] = tr1 + tr2
		ch[offch+ido-1+idx6+ido+ido] = tr2 - tr1
		ch[offch+ido-1+idx6] = a[offa+k*ido] - a[offa+idx4]
		ch[offch+idx6+ido] = a[offa+idx5] - a[offa+idx3]
	}
	if ido < 2 {
		return
	}
	if ido != 2 {
		for k := 0; k < l1; k++ {
			idx1 := k * ido
			idx2 := idx1 + l1*ido
			idx3 := idx2 + l1*ido
			idx4 := idx3 + l1*ido
			idx5 := 4 * idx1
			idx6 := idx5 + ido
			idx7 := idx6 + ido
			idx8 := idx7 + ido
			for i := 2; i < ido; i += 2 {
				ic := ido - i
				idx9 := i - 1 + iw1
				idx10 := i - 1 + iw2
				idx11 := i - 1 + iw3
				w1r := p.wtableR[idx9-1]
				w1i := p.wtableR[idx9]
				w2r := p.wtableR[idx10-1]
				w2i := p.wtableR[idx10]
				w3r := p.wtableR[idx11-1]
				w3i := p.wtableR[idx11]
				idx12 := offa + i
				idx13 := offch + i
				idx14 := offch + ic
				cr2 := w1r*a[idx12-1+idx2] + w1i*a[idx12+idx2]
				ci2 := w1r*a[idx12+idx2] - w1i*a[idx12-1+idx2]
				cr3 := w2r*a[idx12-1+idx3] + w2i*a[idx12+idx3]
				ci3 := w2r*a[idx12+idx3] - w2i*a[idx12-1+idx3]
				cr4 := w3r*a[idx12-1+idx4] + w3i*a[idx12+idx4]
				ci4 := w3r*a[idx12+idx4] - w3i*a[idx12-1+idx4]
				tr1 := cr2 + cr4
				tr4 := cr4 - cr2
				ti1 := ci2 + ci4
				ti4 := ci2 - ci4
				ti2 := a[idx12+idx1] + ci3
				ti3 := a[idx12+idx1] - ci3
				tr2 := a[idx12-1+idx1] + cr3
				tr3 := a[idx12-1+idx1] - cr3
				ch[idx13-1+idx5] = tr1 + tr2
				ch[idx14-1+idx8] = tr2 - tr1
				ch[idx13+idx5] = ti1 + ti2
				ch[idx14+idx8] = ti1 - ti2
				ch[idx13-1+idx7] = ti4 + tr3
				ch[idx14-1+idx6] = tr3 - ti4
				ch[idx13+idx7] = tr4 + ti3
				ch[idx14+idx6] = tr4 - ti3
			}
		}
		if ido%2 == 1 {
			return
		}
	}
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 4 * idx1
		idx3 := idx1 + l1*ido
		idx4 := idx3 + l1*ido
		idx5 := idx4 + l1*ido
		idx6 := idx2 + ido
		idx7 := idx6 + ido
		idx8 := idx7 + ido
		idx9 := offa + ido
		idx10 := offch + ido
		ti1 := -h * (a[idx9-1+idx3] + a[idx9-1+idx5])
		tr1 := h * (a[idx9-1+idx3] - a[idx9-1+idx5])
		ch[idx10-1+idx2] = tr1 + a[idx9-1+idx1]
		ch[idx10-1+idx7] = a[idx9-1+idx1] - tr1
		ch[offch+idx6] = ti1 - a[idx9-1+idx4]
		ch[offch+idx8] = ti1 + a[idx9-1+idx4]
	}
}

func (p *mixedPlan[T]) radb4(ido, l1 int, a []T, offa int, ch []T, offch, offset int) {
	s2 := T(sqrt2)
	iw1 := offset
	iw2 := iw1 + ido
	iw3 := iw2 + ido

	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 4 * idx1
		idx3 := (k + l1) * ido
		idx4 := idx3 + l1*ido
		idx5 := idx4 + l1*ido
		idx6 := idx2 + ido
		idx7 := idx6 + ido
		idx8 := idx7 + ido

		tr1 := a[offa+idx2] - a[offa+ido-1+idx8]
		tr2 := a[offa+idx2] + a[offa+ido-1+idx8]
		tr3 := a[offa+ido-1+idx6] + a[offa+ido-1+idx6]
		tr4 := a[offa+idx7] + a[offa+idx7]
		ch[offch+idx1] = tr2 + tr3
		ch[offch+idx3] = tr1 - tr4
		ch[offch+idx4] = tr2 - tr3
		ch[offch+idx5] = tr1 + tr4
	}
	if ido < 2 {
		return
	}
	if ido != 2 {
		for k := 0; k < l1; k++ {
			idx1 := k * ido
			idx2 := idx1 + l1*ido
			idx3 := idx2 + l1*ido
			idx4 := idx3 + l1*ido
			idx5 := 4 * idx1
			idx6 := idx5 + ido
			idx7 := idx6 + ido
			idx8 := idx7 + ido
			for i := 2; i < ido; i += 2 {
				ic := ido - i
				idx9 := i - 1 + iw1
				idx10 := i - 1 + iw2
				idx11 := i - 1 + iw3
				w1r := p.wtableR[idx9-1]
				w1i := p.wtableR[idx9]
				w2r := p.wtableR[idx10-1]
				w2i := p.wtableR[idx10]
				w3r := p.wtableR[idx11-1]
				w3i := p.wtableR[idx11]
				idx12 := offa + i
				idx13 := offa + ic
				idx14 := offch + i
				ti1 := a[idx12+idx5] + a[idx13+idx8]
				ti2 := a[idx12+idx5] - a[idx13+idx8]
				ti3 := a[idx12+idx7] - a[idx13+idx6]
				tr4 := a[idx12+idx7] + a[idx13+idx6]
				tr1 := a[idx12-1+idx5] - a[idx13-1+idx8]
				tr2 := a[idx12-1+idx5] + a[idx13-1+idx8]
				ti4 := a[idx12-1+idx7] - a[idx13-1+idx6]
				tr3 := a[idx12-1+idx7] + a[idx13-1+idx6]
				ch[idx14-1+idx1] = tr2 + tr3
				cr3 := tr2 - tr3
				ch[idx14+idx1] = ti2 + ti3
				ci3 := ti2 - ti3
				cr2 := tr1 - tr4
				cr4 := tr1 + tr4
				ci2 := ti1 + ti4
				ci4 := ti1 - ti4
				ch[idx14-1+idx2] = w1r*cr2 - w1i*ci2
				ch[idx14+idx2] = w1r*ci2 + w1i*cr2
				ch[idx14-1+idx3] = w2r*cr3 - w2i*ci3
				ch[idx14+idx3] = w2r*ci3 + w2i*cr3
				ch[idx14-1+idx4] = w3r*cr4 - w3i*ci4
				ch[idx14+idx4] = w3r*ci4 + w3i*cr4
			}
		}
		if ido%2 == 1 {
			return
		}
	}
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 4 * idx1
		idx3 := idx1 + l1*ido
		idx4 := idx3 + l1*ido
		idx5 := idx4 + l1*ido
		idx6 := idx2 + ido
		idx7 := idx6 + ido
		idx8 := idx7 + ido
		idx9 := offa + ido
		idx10 := offch + ido
		ti1 := a[offa+idx6] + a[offa+idx8]
		ti2 := a[offa+idx8] - a[offa+idx6]
		tr1 := a[idx9-1+idx2] - a[idx9-1+idx7]
		tr2 := a[idx9-1+idx2] + a[idx9-1+idx7]
		ch[idx10-1+idx1] = tr2 + tr2
		ch[idx10-1+idx3] = s2 * (tr1 - ti1)
		ch[idx10-1+idx4] = ti2 + ti2
		ch[idx10-1+idx5] = -s2 * (tr1 + ti1)
	}
}

func (p *mixedPlan[T]) radf5(ido, l1 int, a []T, offa int, ch []T, offch, offset int) {
	c11r := T(tr11)
	c11i := T(ti11)
	c12r := T(tr12)
	c12i := T(ti12)
	iw1 := offset
	iw2 := iw1 + ido
	iw3 := iw2 + ido
	iw4 := iw3 + ido

	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 5 * idx1
		idx3 := idx2 + ido
		idx4 := idx3 + ido
		idx5 := idx4 + ido
		idx6 := idx5 + ido
		idx7 := idx1 + l1*ido
		idx8 := idx7 + l1*ido
		idx9 := idx8 + l1*ido
		idx10 := idx9 + l1*ido

		cr2 := a[offa+idx10] + a[offa+idx7]
		ci5 := a[offa+idx10] - a[offa+idx7]
		cr3 := a[offa+idx9] + a[offa+idx8]
		ci4 := a[offa+idx9] - a[offa+idx8]
		ch[offch+idx2] = a[offa+idx1] + cr2 + cr3
		ch[offch+ido-1+idx3] = a[offa+idx1] + c11r*cr2 + c12r*cr3
		ch[offch+idx4] = c11i*ci5 + c12i*ci4
		ch[offch+ido-1+idx5] = a[offa+idx1] + c12r*cr2 + c11r*cr3
		ch[offch+idx6] = c12i*ci5 - c11i*ci4
	}
	if ido == 1 {
		return
	}
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 5 * idx1
		idx3 := idx2 + ido
		idx4 := idx3 + ido
		idx5 := idx4 + ido
		idx6 := idx5 + ido
		idx7 := idx1 + l1*ido
		idx8 := idx7 + l1*ido
		idx9 := idx8 + l1*ido
		idx10 := idx9 + l1*ido
		for i := 2; i < ido; i += 2 {
			idx11 := i - 1 + iw1
			idx12 := i - 1 + iw2
			idx13 := i - 1 + iw3
			idx14 := i - 1 + iw4
			w1r := p.wtableR[idx11-1]
			w1i := p.wtableR[idx11]
			w2r := p.wtableR[idx12-1]
			w2i := p.wtableR[idx12]
			w3r := p.wtableR[idx13-1]
			w3i := p.wtableR[idx13]
			w4r := p.wtableR[idx14-1]
			w4i := p.wtableR[idx14]
			ic := ido - i
			idx15 := offa + i
			idx16 := offch + i
			idx17 := offch + ic
			dr2 := w1r*a[idx15-1+idx7] + w1i*a[idx15+idx7]
			di2 := w1r*a[idx15+idx7] - w1i*a[idx15-1+idx7]
			dr3 := w2r*a[idx15-1+idx8] + w2i*a[idx15+idx8]
			di3 := w2r*a[idx15+idx8] - w2i*a[idx15-1+idx8]
			dr4 := w3r*a[idx15-1+idx9] + w3i*a[idx15+idx9]
			di4 := w3r*a[idx15+idx9] - w3i*a[idx15-1+idx9]
			dr5 := w4r*a[idx15-1+idx10] + w4i*a[idx15+idx10]
			di5 := w4r*a[idx15+idx10] - w4i*a[idx15-1+idx10]
			cr2 := dr2 + dr5
			ci5 := dr5 - dr2
			cr5 := di2 - di5
			ci2 := di2 + di5
			cr3 := dr3 + dr4
			ci4 := dr4 - dr3
			cr4 := di3 - di4
			ci3 := di3 + di4
			ch[idx16-1+idx2] = a[idx15-1+idx1] + cr2 + cr3
			ch[idx16+idx2] = a[idx15+idx1] + ci2 + ci3
			tr2 := a[idx15-1+idx1] + c11r*cr2 + c12r*cr3
			ti2 := a[idx15+idx1] + c11r*ci2 + c12r*ci3
			tr3 := a[idx15-1+idx1] + c12r*cr2 + c11r*cr3
			ti3 := a[idx15+idx1] + c12r*ci2 + c11r*ci3
			tr5 := c11i*cr5 + c12i*cr4
			ti5 := c11i*ci5 + c12i*ci4
			tr4 := c12i*cr5 - c11i*cr4
			ti4 := c12i*ci5 - c11i*ci4
			ch[idx16-1+idx4] = tr2 + tr5
			ch[idx17-1+idx3] = tr2 - tr5
			ch[idx16+idx4] = ti2 + ti5
			ch[idx17+idx3] = ti5 - ti2
			ch[idx16-1+idx6] = tr3 + tr4
			ch[idx17-1+idx5] = tr3 - tr4
			ch[idx16+idx6] = ti3 + ti4
			ch[idx17+idx5] = ti4 - ti3
		}
	}
}

func (p *mixedPlan[T]) radb5(ido, l1 int, a []T, offa int, ch []T, offch, offset int) {
	c11r := T(tr11)
	c11i := T(ti11)
	c12r := T(tr12)
	c12i := T(ti12)
	iw1 := offset
	iw2 := iw1 + ido
	iw3 := iw2 + ido
	iw4 := iw3 + ido

	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 5 * idx1
		idx3 := idx2 + ido
		idx4 := idx3 + ido
		idx5 := idx4 + ido
		idx6 := idx5 + ido
		idx7 := idx1 + l1*ido
		idx8 := idx7 + l1*ido
		idx9 := idx8 + l1*ido
		idx10 := idx9 + l1*ido

		ti5 := 2 * a[offa+idx4]
		ti4 := 2 * a[offa+idx6]
		tr2 := 2 * a[offa+ido-1+idx3]
		tr3 := 2 * a[offa+ido-1+idx5]
		ch[offch+idx1] = a[offa+idx2] + tr2 + tr3
		cr2 := a[offa+idx2] + c11r*tr2 + c12r*tr3
		cr3 := a[offa+idx2] + c12r*tr2 + c11r*tr3
		ci5 := c11i*ti5 + c12i*ti4
		ci4 := c12i*ti5 - c11i*ti4
		ch[offch+idx7] = cr2 - ci5
		ch[offch+idx8] = cr3 - ci4
		ch[offch+idx9] = cr3 + ci4
		ch[offch+idx10] = cr2 + ci5
	}
	if ido == 1 {
		return
	}
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 5 * idx1
		idx3 := idx2 + ido
		idx4 := idx3 + ido
		idx5 := idx4 + ido
		idx6 := idx5 + ido
		idx7 := idx1 + l1*ido
		idx8 := idx7 + l1*ido
		idx9 := idx8 + l1*ido
		idx10 := idx9 + l1*ido
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			idx11 := i - 1 + iw1
			idx12 := i - 1 + iw2
			idx13 := i - 1 + iw3
			idx14 := i - 1 + iw4
			w1r := p.wtableR[idx11-1]
			w1i := p.wtableR[idx11]
			w2r := p.wtableR[idx12-1]
			w2i := p.wtableR[idx12]
			w3r := p.wtableR[idx13-1]
			w3i := p.wtableR[idx13]
			w4r := p.wtableR[idx14-1]
			w4i := p.wtableR[idx14]
			idx15 := offa + i
			idx16 := offa + ic
			idx17 := offch + i
			ti5 := a[idx15+idx4] + a[idx16+idx3]
			ti2 := a[idx15+idx4] - a[idx16+idx3]
			ti4 := a[idx15+idx6] + a[idx16+idx5]
			ti3 := a[idx15+idx6] - a[idx16+idx5]
			tr5 := a[idx15-1+idx4] - a[idx16-1+idx3]
			tr2 := a[idx15-1+idx4] + a[idx16-1+idx3]
			tr4 := a[idx15-1+idx6] - a[idx16-1+idx5]
			tr3 := a[idx15-1+idx6] + a[idx16-1+idx5]
			ch[idx17-1+idx1] = a[idx15-1+idx2] + tr2 + tr3
			ch[idx17+idx1] = a[idx15+idx2] + ti2 + ti3
			cr2 := a[idx15-1+idx2] + c11r*tr2 + c12r*tr3
			ci2 := a[idx15+idx2] + c11r*ti2 + c12r*ti3
			cr3 := a[idx15-1+idx2] + c12r*tr2 + c11r*tr3
			ci3 := a[idx15+idx2] + c12r*ti2 + c11r*ti3
			cr5 := c11i*tr5 + c12i*tr4
			ci5 := c11i*ti5 + c12i*ti4
			cr4 := c12i*tr5 - c11i*tr4
			ci4 := c12i*ti5 - c11i*ti4
			dr3 := cr3 - ci4
			dr4 := cr3 + ci4
			di3 := ci3 + cr4
			di4 := ci3 - cr4
			dr5 := cr2 + ci5
			dr2 := cr2 - ci5
			di5 := ci2 - cr5
			di2 := ci2 + cr5
			ch[idx17-1+idx7] = w1r*dr2 - w1i*di2
			ch[idx17+idx7] = w1r*di2 + w1i*dr2
			ch[idx17-1+idx8] = w2r*dr3 - w2i*di3
			ch[idx17+idx8] = w2r*di3 + w2i*dr3
			ch[idx17-1+idx9] = w3r*dr4 - w3i*di4
			ch[idx17+idx9] = w3r*di4 + w3i*dr4
			ch[idx17-1+idx10] = w4r*dr5 - w4i*di5
			ch[idx17+idx10] = w4r*di5 + w4i*dr5
		}
	}
}

func (p *mixedPlan[T]) radfg(ido, ip, l1, idl1 int, in []T, inOff int, out []T, outOff, offset int) {
	iw1 := offset
	dcpF, dspF := rotation(ip)
	dcp := T(dcpF)
	dsp := T(dspF)
	ipph := (ip + 1) / 2
	nbd := (ido - 1) / 2
	if ido != 1 {
		for ik := 0; ik < idl1; ik++ {
			out[outOff+ik] = in[inOff+ik]
		}
		for j := 1; j < ip; j++ {
			idx1 := j * l1 * ido
			for k := 0; k < l1; k++ {
				idx2 := k*ido + idx1
				out[outOff+idx2] = in[inOff+idx2]
			}
		}
		if nbd <= l1 {
			is := -ido
			for j := 1; j < ip; j++ {
				is += ido
				idij := is - 1
				idx1 := j * l1 * ido
				for i := 2; i < ido; i += 2 {
					idij += 2
					idx2 := idij + iw1
					idx4 := inOff + i
					idx5 := outOff + i
					w1r := p.wtableR[idx2-1]
					w1i := p.wtableR[idx2]
					for k := 0; k < l1; k++ {
						idx3 := k*ido + idx1
						oidx1 := idx5 + idx3
						iidx1 := idx4 + idx3
						i1i := in[iidx1-1]
						i1r := in[iidx1]

						out[oidx1-1] = w1r*i1i + w1i*i1r
						out[oidx1] = w1r*i1r - w1i*i1i
					}
				}
			}
		} else {
			is := -ido
			for j := 1; j < ip; j++ {
				is += ido
				idx1 := j * l1 * ido
				for k := 0; k < l1; k++ {
					idij := is - 1
					idx3 := k*ido + idx1
					for i := 2; i < ido; i += 2 {
						idij += 2
						idx2 := idij + iw1
						w1r := p.wtableR[idx2-1]
						w1i := p.wtableR[idx2]
						oidx1 := outOff + i + idx3
						iidx1 := inOff + i + idx3
						i1i := in[iidx1-1]
						i1r := in[iidx1]

						out[oidx1-1] = w1r*i1i + w1i*i1r
						out[oidx1] = w1r*i1r - w1i*i1i
					}
				}
			}
		}
		if nbd >= l1 {
			for j := 1; j < ipph; j++ {
				jc := ip - j
				idx1 := j * l1 * ido
				idx2 := jc * l1 * ido
				for k := 0; k < l1; k++ {
					idx3 := k*ido + idx1
					idx4 := k*ido + idx2
					for i := 2; i < ido; i += 2 {
						idx5 := inOff + i
						idx6 := outOff + i
						iidx1 := idx5 + idx3
						iidx2 := idx5 + idx4
						oidx1 := idx6 + idx3
						oidx2 := idx6 + idx4
						o1i := out[oidx1-1]
						o1r := out[oidx1]
						o2i := out[oidx2-1]
						o2r := out[oidx2]

						in[iidx1-1] = o1i + o2i
						in[iidx1] = o1r + o2r
						in[iidx2-1] = o1r - o2r
						in[iidx2] = o2i - o1i
					}
				}
			}
		} else {
			for j := 1; j < ipph; j++ {
				jc := ip - j
				idx1 := j * l1 * ido
				idx2 := jc * l1 * ido
				for i := 2; i < ido; i += 2 {
					idx5 := inOff + i
					idx6 := outOff + i
					for k := 0; k < l1; k++ {
						idx3 := k*ido + idx1
						idx4 := k*ido + idx2
						iidx1 := idx5 + idx3
						iidx2 := idx5 + idx4
						oidx1 := idx6 + idx3
						oidx2 := idx6 + idx4
						o1i := out[oidx1-1]
						o1r := out[oidx1]
						o2i := out[oidx2-1]
						o2r := out[oidx2]

						in[iidx1-1] = o1i + o2i
						in[iidx1] = o1r + o2r
						in[iidx2-1] = o1r - o2r
						in[iidx2] = o2i - o1i
					}
				}
			}
		}
	} else {
		copy(in[inOff:inOff+idl1], out[outOff:outOff+idl1])
	}
	for j := 1; j < ipph; j++ {
		jc := ip - j
		idx1 := j * l1 * ido
		idx2 := jc * l1 * ido
		for k := 0; k < l1; k++ {
			idx3 := k*ido + idx1
			idx4 := k*ido + idx2
			o1r := out[outOff+idx3]
			o2r := out[outOff+idx4]

			in[inOff+idx3] = o1r + o2r
			in[inOff+idx4] = o2r - o1r
		}
	}

	ar1 := T(1)
	ai1 := T(0)
	idx0 := (ip - 1) * idl1
	for l := 1; l < ipph; l++ {
		lc := ip - l
		ar1h := dcp*ar1 - dsp*ai1
		ai1 = dcp*ai1 + dsp*ar1
		ar1 = ar1h
		idx1 := l * idl1
		idx2 := lc * idl1
		for ik := 0; ik < idl1; ik++ {
			idx3 := outOff + ik
			idx4 := inOff + ik
			out[idx3+idx1] = in[idx4] + ar1*in[idx4+idl1]
			out[idx3+idx2] = ai1 * in[idx4+idx0]
		}
		dc2 := ar1
		ds2 := ai1
		ar2 := ar1
		ai2 := ai1
		for j := 2; j < ipph; j++ {
			jc := ip - j
			ar2h := dc2*ar2 - ds2*ai2
			ai2 = dc2*ai2 + ds2*ar2
			ar2 = ar2h
			idx3 := j * idl1
			idx4 := jc * idl1
			for ik := 0; ik < idl1; ik++ {
				idx5 := outOff + ik
				idx6 := inOff + ik
				out[idx5+idx1] += ar2 * in[idx6+idx3]
				out[idx5+idx2] += ai2 * in[idx6+idx4]
			}
		}
	}
	for j := 1; j < ipph; j++ {
		idx1 := j * idl1
		for ik := 0; ik < idl1; ik++ {
			out[outOff+ik] += in[inOff+ik+idx1]
		}
	}

	if ido >= l1 {
		for k := 0; k < l1; k++ {
			idx1 := k * ido
			idx2 := idx1 * ip
			for i := 0; i < ido; i++ {
				in[inOff+i+idx2] = out[outOff+i+idx1]
			}
		}
	} else {
		for i := 0; i < ido; i++ {
			for k := 0; k < l1; k++ {
				idx1 := k * ido
				in[inOff+i+idx1*ip] = out[outOff+i+idx1]
			}
		}
	}
	idx01 := ip * ido
	for j := 1; j < ipph; j++ {
		jc := ip - j
		j2 := 2 * j
		idx1 := j * l1 * ido
		idx2 := jc * l1 * ido
		idx3 := j2 * ido
		for k := 0; k < l1; k++ {
			idx4 := k * ido
			idx5 := idx4 + idx1
			idx6 := idx4 + idx2
			idx7 := k * idx01
			in[inOff+ido-1+idx3-ido+idx7] = out[outOff+idx5]
			in[inOff+idx3+idx7] = out[outOff+idx6]
		}
	}
	if ido == 1 {
		return
	}
	if nbd >= l1 {
		for j := 1; j < ipph; j++ {
			jc := ip - j
			j2 := 2 * j
			idx1 := j * l1 * ido
			idx2 := jc * l1 * ido
			idx3 := j2 * ido
			for k := 0; k < l1; k++ {
				idx4 := k * idx01
				idx5 := k * ido
				for i := 2; i < ido; i += 2 {
					ic := ido - i
					idx6 := inOff + i
					idx7 := inOff + ic
					idx8 := outOff + i
					iidx1 := idx6 + idx3 + idx4
					iidx2 := idx7 + idx3 - ido + idx4
					oidx1 := idx8 + idx5 + idx1
					oidx2 := idx8 + idx5 + idx2
					o1i := out[oidx1-1]
					o1r := out[oidx1]
					o2i := out[oidx2-1]
					o2r := out[oidx2]

					in[iidx1-1] = o1i + o2i
					in[iidx2-1] = o1i - o2i
					in[iidx1] = o1r + o2r
					in[iidx2] = o2r - o1r
				}
			}
		}
	} else {
		for j := 1; j < ipph; j++ {
			jc := ip - j
			j2 := 2 * j
			idx1 := j * l1 * ido
			idx2 := jc * l1 * ido
			idx3 := j2 * ido
			for i := 2; i < ido; i += 2 {
				ic := ido - i
				idx6 := inOff + i
				idx7 := inOff + ic
				idx8 := outOff + i
				for k := 0; k < l1; k++ {
					idx4 := k * idx01
					idx5 := k * ido
					iidx1 := idx6 + idx3 + idx4
					iidx2 := idx7 + idx3 - ido + idx4
					oidx1 := idx8 + idx5 + idx1
					oidx2 := idx8 + idx5 + idx2
					o1i := out[oidx1-1]
					o1r := out[oidx1]
					o2i := out[oidx2-1]
					o2r := out[oidx2]

					in[iidx1-1] = o1i + o2i
					in[iidx2-1] = o1i - o2i
					in[iidx1] = o1r + o2r
					in[iidx2] = o2r - o1r
				}
			}
		}
	}
}

func (p *mixedPlan[T]) radbg(ido, ip, l1, idl1 int, in []T, inOff int, out []T, outOff, offset int) {
	iw1 := offset
	dcpF, dspF := rotation(ip)
	dcp := T(dcpF)
	dsp := T(dspF)
	nbd := (ido - 1) / 2
	ipph := (ip + 1) / 2
	idx0 := ip * ido
	if ido >= l1 {
		for k := 0; k < l1; k++ {
			idx1 := k * ido
			idx2 := k * idx0
			for i := 0; i < ido; i++ {
				out[outOff+i+idx1] = in[inOff+i+idx2]
			}
		}
	} else {
		for i := 0; i < ido; i++ {
			idx1 := outOff + i
			idx2 := inOff + i
			for k := 0; k < l1; k++ {
				out[idx1+k*ido] = in[idx2+k*idx0]
			}
		}
	}
	iidx0 := inOff + ido - 1
	for j := 1; j < ipph; j++ {
		jc := ip - j
		j2 := 2 * j
		idx1 := j * l1 * ido
		idx2 := jc * l1 * ido
		idx3 := j2 * ido
		for k := 0; k < l1; k++ {
			idx4 := k * ido
			idx5 := idx4 * ip
			iidx1 := iidx0 + idx3 + idx5 - ido
			iidx2 := inOff + idx3 + idx5
			i1r := in[iidx1]
			i2r := in[iidx2]

			out[outOff+idx4+idx1] = i1r + i1r
			out[outOff+idx4+idx2] = i2r + i2r
		}
	}

	if ido != 1 {
		if nbd >= l1 {
			for j := 1; j < ipph; j++ {
				jc := ip - j
				idx1 := j * l1 * ido
				idx2 := jc * l1 * ido
				idx3 := 2 * j * ido
				for k := 0; k < l1; k++ {
					idx4 := k*ido + idx1
					idx5 := k*ido + idx2
					idx6 := k*ip*ido + idx3
					for i := 2; i < ido; i += 2 {
						ic := ido - i
						idx7 := outOff + i
						idx8 := inOff + ic
						idx9 := inOff + i
						oidx1 := idx7 + idx4
						oidx2 := idx7 + idx5
						iidx1 := idx9 + idx6
						iidx2 := idx8 + idx6 - ido
						a1i := in[iidx1-1]
						a1r := in[iidx1]
						a2i := in[iidx2-1]
						a2r := in[iidx2]

						out[oidx1-1] = a1i + a2i
						out[oidx2-1] = a1i - a2i
						out[oidx1] = a1r - a2r
						out[oidx2] = a1r + a2r
					}
				}
			}
		} else {
			for j := 1; j < ipph; j++ {
				jc := ip - j
				idx1 := j * l1 * ido
				idx2 := jc * l1 * ido
				idx3 := 2 * j * ido
				for i := 2; i < ido; i += 2 {
					ic := ido - i
					idx7 := outOff + i
					idx8 := inOff + ic
					idx9 := inOff + i
					for k := 0; k < l1; k++ {
						idx4 := k*ido + idx1
						idx5 := k*ido + idx2
						idx6 := k*ip*ido + idx3
						oidx1 := idx7 + idx4
						oidx2 := idx7 + idx5
						iidx1 := idx9 + idx6
						iidx2 := idx8 + idx6 - ido
						a1i := in[iidx1-1]
						a1r := in[iidx1]
						a2i := in[iidx2-1]
						a2r := in[iidx2]

						out[oidx1-1] = a1i + a2i
						out[oidx2-1] = a1i - a2i
						out[oidx1] = a1r - a2r
						out[oidx2] = a1r + a2r
					}
				}
			}
		}
	}

	ar1 := T(1)
	ai1 := T(0)
	idx01 := (ip - 1) * idl1
	for l := 1; l < ipph; l++ {
		lc := ip - l
		ar1h := dcp*ar1 - dsp*ai1
		ai1 = dcp*ai1 + dsp*ar1
		ar1 = ar1h
		idx1 := l * idl1
		idx2 := lc * idl1
		for ik := 0; ik < idl1; ik++ {
			idx3 := inOff + ik
			idx4 := outOff + ik
			in[idx3+idx1] = out[idx4] + ar1*out[idx4+idl1]
			in[idx3+idx2] = ai1 * out[idx4+idx01]
		}
		dc2 := ar1
		ds2 := ai1
		ar2 := ar1
		ai2 := ai1
		for j := 2; j < ipph; j++ {
			jc := ip - j
			ar2h := dc2*ar2 - ds2*ai2
			ai2 = dc2*ai2 + ds2*ar2
			ar2 = ar2h
			idx5 := j * idl1
			idx6 := jc * idl1
			for ik := 0; ik < idl1; ik++ {
				idx7 := inOff + ik
				idx8 := outOff + ik
				in[idx7+idx1] += ar2 * out[idx8+idx5]
				in[idx7+idx2] += ai2 * out[idx8+idx6]
			}
		}
	}
	for j := 1; j < ipph; j++ {
		idx1 := j * idl1
		for ik := 0; ik < idl1; ik++ {
			idx2 := outOff + ik
			out[idx2] += out[idx2+idx1]
		}
	}
	for j := 1; j < ipph; j++ {
		jc := ip - j
		idx1 := j * l1 * ido
		idx2 := jc * l1 * ido
		for k := 0; k < l1; k++ {
			idx3 := k * ido
			oidx1 := outOff + idx3
			iidx1 := inOff + idx3 + idx1
			iidx2 := inOff + idx3 + idx2
			i1r := in[iidx1]
			i2r := in[iidx2]

			out[oidx1+idx1] = i1r - i2r
			out[oidx1+idx2] = i1r + i2r
		}
	}

	if ido == 1 {
		return
	}
	if nbd >= l1 {
		for j := 1; j < ipph; j++ {
			jc := ip - j
			idx1 := j * l1 * ido
			idx2 := jc * l1 * ido
			for k := 0; k < l1; k++ {
				idx3 := k * ido
				for i := 2; i < ido; i += 2 {
					idx4 := outOff + i
					idx5 := inOff + i
					oidx1 := idx4 + idx3 + idx1
					oidx2 := idx4 + idx3 + idx2
					iidx1 := idx5 + idx3 + idx1
					iidx2 := idx5 + idx3 + idx2
					i1i := in[iidx1-1]
					i1r := in[iidx1]
					i2i := in[iidx2-1]
					i2r := in[iidx2]

					out[oidx1-1] = i1i - i2r
					out[oidx2-1] = i1i + i2r
					out[oidx1] = i1r + i2i
					out[oidx2] = i1r - i2i
				}
			}
		}
	} else {
		for j := 1; j < ipph; j++ {
			jc := ip - j
			idx1 := j * l1 * ido
			idx2 := jc * l1 * ido
			for i := 2; i < ido; i += 2 {
				idx4 := outOff + i
				idx5 := inOff + i
				for k := 0; k < l1; k++ {
					idx3 := k * ido
					oidx1 := idx4 + idx3 + idx1
					oidx2 := idx4 + idx3 + idx2
					iidx1 := idx5 + idx3 + idx1
					iidx2 := idx5 + idx3 + idx2
					i1i := in[iidx1-1]
					i1r := in[iidx1]
					i2i := in[iidx2-1]
					i2r := in[iidx2]

					out[oidx1-1] = i1i - i2r
					out[oidx2-1] = i1i + i2r
					out[oidx1] = i1r + i2i
					out[oidx2] = i1r - i2i
				}
			}
		}
	}
	copy(in[inOff:inOff+idl1], out[outOff:outOff+idl1])
	for j := 1; j < ip; j++ {
		idx1 := j * l1 * ido
		for k := 0; k < l1; k++ {
			idx2 := k*ido + idx1
			in[inOff+idx2] = out[outOff+idx2]
		}
	}
	if nbd <= l1 {
		is := -ido
		for j := 1; j < ip; j++ {
			is += ido
			idij := is - 1
			idx1 := j * l1 * ido
			for i := 2; i < ido; i += 2 {
				idij += 2
				idx2 := idij + iw1
				w1r := p.wtableR[idx2-1]
				w1i := p.wtableR[idx2]
				idx4 := inOff + i
				idx5 := outOff + i
				for k := 0; k < l1; k++ {
					idx3 := k*ido + idx1
					iidx1 := idx4 + idx3
					oidx1 := idx5 + idx3
					o1i := out[oidx1-1]
					o1r := out[oidx1]

					in[iidx1-1] = w1r*o1i - w1i*o1r
					in[iidx1] = w1r*o1r + w1i*o1i
				}
			}
		}
	} else {
		is := -ido
		for j := 1; j < ip; j++ {
			is += ido
			idx1 := j * l1 * ido
			for k := 0; k < l1; k++ {
				idij := is - 1
				idx3 := k*ido + idx1
				for i := 2; i < ido; i += 2 {
					idij += 2
					idx2 := idij + iw1
					w1r := p.wtableR[idx2-1]
					w1i := p.wtableR[idx2]
					idx4 := inOff + i
					idx5 := outOff + i
					iidx1 := idx4 + idx3
					oidx1 := idx5 + idx3
					o1i := out[oidx1-1]
					o1r := out[oidx1]

					in[iidx1-1] = w1r*o1i - w1i*o1r
					in[iidx1] = w1r*o1r + w1i*o1i
				}
			}
		}
	}
}
