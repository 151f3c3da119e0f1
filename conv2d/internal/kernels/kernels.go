// Package kernels implements the convolution strategies over raw
// interleaved RGB buffers.
//
// Every strategy computes the identical result: for each interior output
// pixel the kernel taps are accumulated in row-major order into a float32
// sum per channel (multiply then add, no fused contraction), the optional
// normalizer is divided out, and the value is clamped to [0, 255] and
// truncated to a byte. The border of thickness side/2 is never visited
// and stays at the zero value of the destination buffer. Because the
// per-pixel operation sequence is the same in every path, the strategies
// produce byte-identical output.
package kernels

import "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"

// channels is the fixed interleaved channel count (RGB).
const channels = 3

func clampU8(t float32) uint8 {
	if t < 0 {
		return 0
	}
	if t > 255 {
		return 255
	}
	return uint8(t)
}

// fusedPixel computes one output pixel, reusing each source window read
// for all three channels. It is both the inner body of ScalarFused and
// the peel path for the vectorized strategies.
func fusedPixel(dst, src []uint8, width, x, y, half int, k registry.Kernel) {
	var acc [channels]float32
	for i := 0; i < k.Side; i++ {
		row := (y - half + i) * width * channels
		for j := 0; j < k.Side; j++ {
			base := row + (x-half+j)*channels
			w := k.Weights[i*k.Side+j]
			for c := 0; c < channels; c++ {
				acc[c] += float32(src[base+c]) * w
			}
		}
	}

	base := y*width*channels + x*channels
	for c := 0; c < channels; c++ {
		t := acc[c]
		if k.HasDiv {
			t /= k.Div
		}
		dst[base+c] = clampU8(t)
	}
}
