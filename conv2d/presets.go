package conv2d

import (
	"errors"
	"math"
)

// ErrSigma reports a non-positive Gaussian standard deviation.
var ErrSigma = errors.New("conv2d: gaussian sigma must be positive")

// Box returns an averaging box (mean) filter of the given side length.
func Box(side int) (Kernel, error) {
	if side < 3 || side%2 == 0 {
		return Kernel{}, ErrKernelSize
	}
	weights := make([]float32, side*side)
	for i := range weights {
		weights[i] = 1
	}
	return NewKernel(weights, true)
}

// Sobel returns the 3x3 horizontal Sobel edge-detection kernel (no
// normalization).
func Sobel() Kernel {
	return mustKernel([]float32{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}, false)
}

// SobelY returns the 3x3 vertical Sobel edge-detection kernel.
func SobelY() Kernel {
	return mustKernel([]float32{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}, false)
}

// Laplacian returns the 3x3 four-neighbor Laplacian kernel.
func Laplacian() Kernel {
	return mustKernel([]float32{
		0, 1, 0,
		1, -4, 1,
		0, 1, 0,
	}, false)
}

// Sharpen returns a 3x3 sharpening kernel.
func Sharpen() Kernel {
	return mustKernel([]float32{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	}, false)
}

// Emboss returns a 3x3 diagonal emboss kernel.
func Emboss() Kernel {
	return mustKernel([]float32{
		-2, -1, 0,
		-1, 1, 1,
		0, 1, 2,
	}, false)
}

// Gaussian returns an averaging Gaussian blur kernel of the given side
// length and standard deviation. Sigma must be positive.
func Gaussian(side int, sigma float64) (Kernel, error) {
	if side < 3 || side%2 == 0 {
		return Kernel{}, ErrKernelSize
	}
	if sigma <= 0 {
		return Kernel{}, ErrSigma
	}

	half := side / 2
	weights := make([]float32, side*side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			dy := float64(i - half)
			dx := float64(j - half)
			weights[i*side+j] = float32(math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma)))
		}
	}
	return NewKernel(weights, true)
}

// mustKernel builds a fixed preset; the weight tables above are known
// valid.
func mustKernel(weights []float32, averaging bool) Kernel {
	k, err := NewKernel(weights, averaging)
	if err != nil {
		panic(err)
	}
	return k
}
