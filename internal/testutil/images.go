// Package testutil provides deterministic test images for the
// convolution packages.
package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-conv2d/rgb"
)

// Uniform returns an image filled with one constant color.
func Uniform(width, height int, r, g, b uint8) *rgb.Image {
	pix := make([]uint8, width*height*rgb.Channels)
	for i := 0; i < len(pix); i += rgb.Channels {
		pix[i] = r
		pix[i+1] = g
		pix[i+2] = b
	}
	return rgb.FromRaw(pix, width, height)
}

// Gradient returns a deterministic image whose channels ramp at
// different rates, so neighboring pixels always differ.
func Gradient(width, height int) *rgb.Image {
	pix := make([]uint8, width*height*rgb.Channels)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pix[i] = uint8((x*7 + y*3) % 256)
			pix[i+1] = uint8((x*5 + y*11) % 256)
			pix[i+2] = uint8((x + y*17) % 256)
			i += rgb.Channels
		}
	}
	return rgb.FromRaw(pix, width, height)
}

// Noise returns an image of uniform random bytes with a fixed seed for
// reproducibility.
func Noise(width, height int, seed int64) *rgb.Image {
	rng := rand.New(rand.NewSource(seed))
	pix := make([]uint8, width*height*rgb.Channels)
	for i := range pix {
		pix[i] = uint8(rng.Intn(256))
	}
	return rgb.FromRaw(pix, width, height)
}
