// Package reference contains direct O(n^2) transform evaluations. They
// exist purely as oracles for the test suites; nothing in the library
// proper depends on them.
package reference

import "math"

// DFT evaluates the discrete Fourier transform of interleaved complex
// data [re0,im0,re1,im1,...]. sign is -1 for the forward transform and
// +1 for the unscaled inverse.
func DFT(a []float64, sign int) []float64 {
	n := len(a) / 2
	out := make([]float64, 2*n)
	for k := 0; k < n; k++ {
		var sumRe, sumIm float64
		for j := 0; j < n; j++ {
			arg := float64(sign) * 2 * math.Pi * float64(j) * float64(k) / float64(n)
			c, s := math.Cos(arg), math.Sin(arg)
			re, im := a[2*j], a[2*j+1]
			sumRe += re*c - im*s
			sumIm += re*s + im*c
		}
		out[2*k] = sumRe
		out[2*k+1] = sumIm
	}
	return out
}

// RealDFT evaluates the forward DFT of real samples, returning the full
// interleaved complex spectrum of length 2*len(x).
func RealDFT(x []float64) []float64 {
	a := make([]float64, 2*len(x))
	for i, v := range x {
		a[2*i] = v
	}
	return DFT(a, -1)
}

// DHT evaluates the discrete Hartley transform H[k] = sum x[j]*cas(2pi jk/n).
func DHT(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for j := 0; j < n; j++ {
			arg := 2 * math.Pi * float64(j) * float64(k) / float64(n)
			sum += x[j] * (math.Cos(arg) + math.Sin(arg))
		}
		out[k] = sum
	}
	return out
}

// DHT2D evaluates the 2D Hartley transform of row-major data by the
// direct double sum over both dimensions.
func DHT2D(a []float64, rows, cols int) []float64 {
	out := make([]float64, len(a))
	for k1 := 0; k1 < rows; k1++ {
		for k2 := 0; k2 < cols; k2++ {
			var sum float64
			for j1 := 0; j1 < rows; j1++ {
				for j2 := 0; j2 < cols; j2++ {
					arg := 2 * math.Pi * (float64(j1)*float64(k1)/float64(rows) +
						float64(j2)*float64(k2)/float64(cols))
					sum += a[j1*cols+j2] * (math.Cos(arg) + math.Sin(arg))
				}
			}
			out[k1*cols+k2] = sum
		}
	}
	return out
}

// DHT3D evaluates the 3D Hartley transform of slice/row/column-major data.
func DHT3D(a []float64, slices, rows, cols int) []float64 {
	out := make([]float64, len(a))
	sliceStride := rows * cols
	for k1 := 0; k1 < slices; k1++ {
		for k2 := 0; k2 < rows; k2++ {
			for k3 := 0; k3 < cols; k3++ {
				var sum float64
				for j1 := 0; j1 < slices; j1++ {
					for j2 := 0; j2 < rows; j2++ {
						for j3 := 0; j3 < cols; j3++ {
							arg := 2 * math.Pi * (float64(j1)*float64(k1)/float64(slices) +
								float64(j2)*float64(k2)/float64(rows) +
								float64(j3)*float64(k3)/float64(cols))
							sum += a[j1*sliceStride+j2*cols+j3] * (math.Cos(arg) + math.Sin(arg))
						}
					}
				}
				out[k1*sliceStride+k2*cols+k3] = sum
			}
		}
	}
	return out
}
