//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-conv2d/conv2d/internal/kernels"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Vec16's 16-column groups and deinterleaved loads give the compiler
// the long, branch-free runs that vectorize well on 256-bit hardware.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Convolve:  kernels.Vec16,
	})
}
