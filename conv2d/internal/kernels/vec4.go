package kernels

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-conv2d/conv2d/internal/lane"
)

// Vec4 processes four adjacent output columns per iteration. For each
// kernel tap it broadcasts the weight, gathers four same-channel source
// samples per channel with strided loads and multiply-adds them into
// three running 4-lane accumulators. Trailing columns that do not fill a
// group of four fall back to the fused scalar path.
func Vec4(dst, src []uint8, width, height int, k registry.Kernel) {
	half := k.Side / 2
	xend := width - half
	yend := height - half
	vecEnd := width - half - (width-2*half)%lane.Width

	for y := half; y < yend; y++ {
		for x := half; x < vecEnd; x += lane.Width {
			var acc [channels]lane.F32x4
			for i := 0; i < k.Side; i++ {
				row := (y - half + i) * width * channels
				for j := 0; j < k.Side; j++ {
					base := row + (x-half+j)*channels
					w := lane.Dup(k.Weights[i*k.Side+j])
					for c := 0; c < channels; c++ {
						acc[c] = lane.MulAdd(acc[c], lane.GatherRGB(src[base+c:]), w)
					}
				}
			}
			storeVec4(dst, width, x, y, k, &acc)
		}

		for x := vecEnd; x < xend; x++ {
			fusedPixel(dst, src, width, x, y, half, k)
		}
	}
}

// storeVec4 normalizes, clamps and scatters one group of four output
// pixels back into the interleaved destination.
func storeVec4(dst []uint8, width, x, y int, k registry.Kernel, acc *[channels]lane.F32x4) {
	base := y*width*channels + x*channels
	for c := 0; c < channels; c++ {
		v := acc[c]
		if k.HasDiv {
			v = lane.DivScalar(v, k.Div)
		}
		out := lane.ClampU8(v)
		for z := 0; z < lane.Width; z++ {
			dst[base+z*channels+c] = out[z]
		}
	}
}
