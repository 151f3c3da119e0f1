//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-conv2d/conv2d/internal/kernels"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Vec4Cached keeps its working set in a small 4-lane register bank,
// which fits the 128-bit baseline vector width.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Convolve:  kernels.Vec4Cached,
	})
}
