//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-conv2d/conv2d/internal/kernels"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Vec16 mirrors the NEON vld3/vst3 deinterleaving pipeline; its 4-lane
// groups map directly onto 128-bit NEON registers.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Convolve:  kernels.Vec16,
	})
}
