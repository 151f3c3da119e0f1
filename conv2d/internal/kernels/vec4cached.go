package kernels

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-conv2d/conv2d/internal/lane"
)

// Vec4Cached processes four adjacent output columns per iteration like
// Vec4, but removes the redundant loads across the kernel columns of one
// kernel row: each source row touched by the current output group is
// loaded once into a small bank of 2*half+4 samples per channel, and the
// window for kernel column j is derived from the adjacent register pair
// covering offset j by a lane shift instead of re-reading memory.
//
// The bank holds ceil(half/2)+1 registers per channel (elements
// 4k..4k+3 of the row run in register k). When half is odd the run is
// not a multiple of four, so the last register is filled with a 2-lane
// load to stay inside the valid read range.
func Vec4Cached(dst, src []uint8, width, height int, k registry.Kernel) {
	half := k.Side / 2
	xend := width - half
	yend := height - half
	vecEnd := width - half - (width-2*half)%lane.Width

	bankLen := (half+1)/2 + 1
	bank := make([][channels]lane.F32x4, bankLen)

	for y := half; y < yend; y++ {
		for x := half; x < vecEnd; x += lane.Width {
			var acc [channels]lane.F32x4
			for i := 0; i < k.Side; i++ {
				row := (y-half+i)*width*channels + (x-half)*channels

				for r := 0; r < bankLen-1; r++ {
					loadQuad(&bank[r], src[row+r*lane.Width*channels:], lane.Width)
				}
				tail := lane.Width
				if half%2 == 1 {
					tail = 2
				}
				loadQuad(&bank[bankLen-1], src[row+(bankLen-1)*lane.Width*channels:], tail)

				for j := 0; j < k.Side; j++ {
					w := lane.Dup(k.Weights[i*k.Side+j])
					reg, off := j/lane.Width, j%lane.Width
					for c := 0; c < channels; c++ {
						win := bank[reg][c]
						if off != 0 {
							win = lane.Ext(bank[reg][c], bank[reg+1][c], off)
						}
						acc[c] = lane.MulAdd(acc[c], win, w)
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

// loadQuad fills one bank register per channel from n consecutive pixels
// of an interleaved run, zeroing the lanes past n.
func loadQuad(reg *[channels]lane.F32x4, src []uint8, n int) {
	for c := 0; c < channels; c++ {
		if n == lane.Width {
			reg[c] = lane.GatherRGB(src[c:])
		} else {
			reg[c] = lane.GatherRGBN(src[c:], n)
		}
	}
}
