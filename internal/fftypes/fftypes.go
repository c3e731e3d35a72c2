// Package fftypes holds the numeric constraints shared by the transform
// packages.
package fftypes

// Float enumerates the sample types the transforms operate on.
type Float interface {
	~float32 | ~float64
}
