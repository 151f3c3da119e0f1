package generic

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-conv2d/conv2d/internal/kernels"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Convolve:  kernels.ScalarFused,
	})
}
