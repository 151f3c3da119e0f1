package conv2d

import (
	"sync"

	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-conv2d/conv2d/internal/kernels"
	"github.com/cwbudde/algo-conv2d/rgb"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Processor applies one kernel to images. It is stateless across calls:
// every Apply* call is a pure function of (kernel, source image) and
// returns a freshly allocated destination image of identical dimensions.
// The source is only read, so a Processor may be used from multiple
// goroutines concurrently.
type Processor struct {
	kernel Kernel
}

var (
	convolveImpl     registry.ConvolveFn
	convolveInitOnce sync.Once
)

// NewProcessor returns a Processor owning the given kernel.
func NewProcessor(k Kernel) *Processor {
	return &Processor{kernel: k}
}

// Kernel returns the processor's kernel.
func (p *Processor) Kernel() Kernel { return p.kernel }

// Apply convolves src with the strategy selected for the detected CPU
// features (see [ActiveStrategy]).
func (p *Processor) Apply(src *rgb.Image) *rgb.Image {
	convolveInitOnce.Do(initConvolveKernel)
	return p.run(src, convolveImpl)
}

// ApplyScalar convolves src with the channel-outer scalar reference
// strategy.
func (p *Processor) ApplyScalar(src *rgb.Image) *rgb.Image {
	return p.run(src, kernels.Scalar)
}

// ApplyScalarFused convolves src with the channel-inner scalar strategy,
// which reuses each source window read for all three channels.
func (p *Processor) ApplyScalarFused(src *rgb.Image) *rgb.Image {
	return p.run(src, kernels.ScalarFused)
}

// ApplyVec4 convolves src processing four output columns at a time with
// per-tap strided gathers.
func (p *Processor) ApplyVec4(src *rgb.Image) *rgb.Image {
	return p.run(src, kernels.Vec4)
}

// ApplyVec4Cached convolves src processing four output columns at a time
// with a per-row register bank and lane-shift window derivation.
func (p *Processor) ApplyVec4Cached(src *rgb.Image) *rgb.Image {
	return p.run(src, kernels.Vec4Cached)
}

// ApplyVec16 convolves src processing sixteen output columns at a time
// with deinterleaving loads and saturating packed stores.
func (p *Processor) ApplyVec16(src *rgb.Image) *rgb.Image {
	return p.run(src, kernels.Vec16)
}

func (p *Processor) run(src *rgb.Image, fn registry.ConvolveFn) *rgb.Image {
	dst := make([]uint8, len(src.Content()))
	fn(dst, src.Content(), src.Width(), src.Height(), p.flat())
	return rgb.FromRaw(dst, src.Width(), src.Height())
}

// flat hands the immutable kernel data to the implementation layer.
func (p *Processor) flat() registry.Kernel {
	return registry.Kernel{
		Weights: p.kernel.weights,
		Side:    p.kernel.side,
		Div:     p.kernel.div,
		HasDiv:  p.kernel.hasDiv,
	}
}

func initConvolveKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("conv2d: no convolution strategy registered (missing generic fallback?)")
	}
	if entry.Convolve == nil {
		panic("conv2d: selected strategy missing Convolve")
	}
	convolveImpl = entry.Convolve
}

// ActiveStrategy reports the name of the strategy [Processor.Apply]
// selects for the detected CPU features ("generic", "sse2", "avx2" or
// "neon").
func ActiveStrategy() string {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		return ""
	}
	return entry.Name
}

// Strategies lists the registered strategy names in selection order.
func Strategies() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
