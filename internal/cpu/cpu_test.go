package cpu

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetectFeatures(t *testing.T) {
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if f.NumCPU < 1 {
		t.Errorf("NumCPU = %d, want >= 1", f.NumCPU)
	}
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Error("amd64 must report SSE2")
	}
}

func TestFeaturesString(t *testing.T) {
	s := DetectFeatures().String()
	if !strings.HasPrefix(s, runtime.GOARCH+"[") || !strings.HasSuffix(s, "]") {
		t.Errorf("String() = %q, want %q prefix and ] suffix", s, runtime.GOARCH+"[")
	}
}
