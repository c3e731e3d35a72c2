// Package spectral provides in-place fast Fourier and Hartley
// transforms over float32 and float64 data: a 1D FFT with complex,
// packed-real and full-spectrum variants for arbitrary lengths, and
// discrete Hartley transforms in one, two and three dimensions.
//
// Transforms larger than the configured thresholds split across a
// worker pool; see SetWorkerCount and the threshold accessors. A plan
// is reusable for any number of transforms of its length but must not
// be shared between goroutines.
package spectral

import "github.com/cwbudde/algo-spectral/internal/fftypes"

// Float constrains the element types the plans operate on.
type Float = fftypes.Float
