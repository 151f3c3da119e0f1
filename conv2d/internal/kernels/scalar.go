package kernels

import "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"

// Scalar is the channel-outer reference strategy: for each output pixel
// it accumulates one channel at a time over the full kernel window.
// Simplest possible formulation; every other strategy is validated
// against its output.
func Scalar(dst, src []uint8, width, height int, k registry.Kernel) {
	half := k.Side / 2
	xend := width - half
	yend := height - half

	for y := half; y < yend; y++ {
		for x := half; x < xend; x++ {
			for c := 0; c < channels; c++ {
				var t float32
				for i := 0; i < k.Side; i++ {
					row := (y - half + i) * width * channels
					for j := 0; j < k.Side; j++ {
						t += float32(src[row+(x-half+j)*channels+c]) * k.Weights[i*k.Side+j]
					}
				}
				if k.HasDiv {
					t /= k.Div
				}
				dst[y*width*channels+x*channels+c] = clampU8(t)
			}
		}
	}
}

// ScalarFused is the channel-inner strategy: for each output pixel the
// kernel window is swept once and all three channels accumulate from the
// same source reads, improving locality over Scalar.
func ScalarFused(dst, src []uint8, width, height int, k registry.Kernel) {
	half := k.Side / 2
	xend := width - half
	yend := height - half

	for y := half; y < yend; y++ {
		for x := half; x < xend; x++ {
			fusedPixel(dst, src, width, x, y, half, k)
		}
	}
}
