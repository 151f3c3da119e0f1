package kernels

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-conv2d/conv2d/internal/lane"
)

// outputGroups is the number of 4-lane accumulator groups Vec16 carries,
// covering 16 output columns per iteration.
const outputGroups = 4

// Vec16 processes sixteen adjacent output columns per iteration. Each
// source row touched by the current output group is pulled in through
// deinterleaving loads that split the interleaved RGB run into three
// per-channel runs, widened from bytes into a bank of (side+1)/4+4
// 4-lane registers per channel. The window for kernel column j of output
// sub-group z is then derived from the register pair covering lane
// offset z*4+j by the same lane shift Vec4Cached uses. All four
// accumulator groups are normalized and clamped together and packed back
// into the interleaved destination with a single deinterleaved store per
// group. Trailing columns fall back to the fused scalar path.
func Vec16(dst, src []uint8, width, height int, k registry.Kernel) {
	half := k.Side / 2
	xend := width - half
	yend := height - half
	vecEnd := width - half - (width-2*half)%16

	bankLen := (k.Side+1)/lane.Width + outputGroups
	bank := make([][channels]lane.F32x4, bankLen)

	for y := half; y < yend; y++ {
		for x := half; x < vecEnd; x += 16 {
			var acc [outputGroups][channels]lane.F32x4
			for i := 0; i < k.Side; i++ {
				row := (y-half+i)*width*channels + (x-half)*channels
				fillBank(bank, src[row:], half)

				for j := 0; j < k.Side; j++ {
					w := lane.Dup(k.Weights[i*k.Side+j])
					for z := 0; z < outputGroups; z++ {
						s := z*lane.Width + j
						reg, off := s/lane.Width, s%lane.Width
						for c := 0; c < channels; c++ {
							win := bank[reg][c]
							if off != 0 {
								win = lane.Ext(bank[reg][c], bank[reg+1][c], off)
							}
							acc[z][c] = lane.MulAdd(acc[z][c], win, w)
						}
					}
				}
			}

			if k.HasDiv {
				for z := range acc {
					for c := range acc[z] {
						acc[z][c] = lane.DivScalar(acc[z][c], k.Div)
					}
				}
			}

			base := y*width*channels + x*channels
			var packed [channels][16]uint8
			for c := 0; c < channels; c++ {
				packed[c] = lane.PackU8x16([outputGroups]lane.F32x4{
					acc[0][c], acc[1][c], acc[2][c], acc[3][c],
				})
			}
			lane.InterleaveRGB16(dst[base:], packed[0], packed[1], packed[2])
		}

		for x := vecEnd; x < xend; x++ {
			fusedPixel(dst, src, width, x, y, half, k)
		}
	}
}

// fillBank loads the 2*half+16 samples per channel one source row
// contributes, walking down through the widest load that still fits:
// 16-pixel deinterleaving loads, then an 8-pixel one, then plain 4- or
// 2-lane gathers. The run length is always even, so the staircase
// terminates exactly. Bank register k holds elements 4k..4k+3; the
// element offset advances with the loads so each load lands at its own
// offset in the row run.
func fillBank(bank [][channels]lane.F32x4, src []uint8, half int) {
	remain := 2*half + 16
	elem := 0
	for remain > 0 {
		base := elem * channels
		switch {
		case remain >= 16:
			r, g, b := lane.DeinterleaveRGB16(src[base:])
			qr, qg, qb := lane.WidenU8x16(r), lane.WidenU8x16(g), lane.WidenU8x16(b)
			for z := 0; z < 4; z++ {
				reg := &bank[elem/lane.Width+z]
				reg[0], reg[1], reg[2] = qr[z], qg[z], qb[z]
			}
			elem += 16
			remain -= 16
		case remain >= 8:
			r, g, b := lane.DeinterleaveRGB8(src[base:])
			qr, qg, qb := lane.WidenU8x8(r), lane.WidenU8x8(g), lane.WidenU8x8(b)
			for z := 0; z < 2; z++ {
				reg := &bank[elem/lane.Width+z]
				reg[0], reg[1], reg[2] = qr[z], qg[z], qb[z]
			}
			elem += 8
			remain -= 8
		case remain >= 4:
			loadQuad(&bank[elem/lane.Width], src[base:], lane.Width)
			elem += 4
			remain -= 4
		default: // remain == 2
			loadQuad(&bank[elem/lane.Width], src[base:], 2)
			remain = 0
		}
	}
}
