// Package cpu reports the processor features relevant to transform
// performance. It is consulted by the bench tool to label measurements;
// the transforms themselves are portable Go.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the detected capabilities of the host CPU.
type Features struct {
	HasSSE2      bool
	HasSSE3      bool
	HasSSSE3     bool
	HasSSE41     bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
	NumCPU       int
}

// DetectFeatures queries golang.org/x/sys/cpu for the host capabilities.
// Fields for foreign architectures are simply false.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE3:      cpu.X86.HasSSE3,
		HasSSSE3:     cpu.X86.HasSSSE3,
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
	}
}

// String renders the feature set as "arch[flag flag ...]".
func (f Features) String() string {
	var flags []string
	for _, fl := range []struct {
		on   bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasSSE3, "sse3"},
		{f.HasSSSE3, "ssse3"},
		{f.HasSSE41, "sse4.1"},
		{f.HasAVX, "avx"},
		{f.HasAVX2, "avx2"},
		{f.HasAVX512, "avx512"},
		{f.HasNEON, "neon"},
	} {
		if fl.on {
			flags = append(flags, fl.name)
		}
	}
	return f.Architecture + "[" + strings.Join(flags, " ") + "]"
}
