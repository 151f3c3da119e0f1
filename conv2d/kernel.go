package conv2d

import "errors"

// Errors returned by kernel construction.
var (
	// ErrKernelShape reports a weight count that is not the square of an
	// odd side length.
	ErrKernelShape = errors.New("conv2d: weight count is not an odd perfect square")

	// ErrKernelSize reports a side length that is even or smaller than 3.
	ErrKernelSize = errors.New("conv2d: kernel side must be odd and at least 3")

	// ErrZeroNormalizer reports an averaging kernel whose weights sum to
	// zero, which would divide by zero.
	ErrZeroNormalizer = errors.New("conv2d: averaging kernel weights sum to zero")
)

// Kernel is an immutable square convolution weight matrix with an
// optional averaging normalizer.
type Kernel struct {
	weights []float32
	side    int
	div     float32
	hasDiv  bool
}

// NewKernel validates and stores a row-major weight matrix. The side
// length is derived from the weight count, which must be the square of
// an odd number >= 3. When averaging is true the convolution result is
// divided by the sum of the weights, which must then be nonzero.
func NewKernel(weights []float32, averaging bool) (Kernel, error) {
	side := isqrt(len(weights))
	if side*side != len(weights) {
		return Kernel{}, ErrKernelShape
	}
	if side%2 == 0 || side < 3 {
		return Kernel{}, ErrKernelSize
	}

	k := Kernel{
		weights: append([]float32(nil), weights...),
		side:    side,
	}

	if averaging {
		var sum float32
		for _, w := range k.weights {
			sum += w
		}
		if sum == 0 {
			return Kernel{}, ErrZeroNormalizer
		}
		k.div = sum
		k.hasDiv = true
	}

	return k, nil
}

// At returns the weight at the given tap. Bounds are the caller's
// responsibility; row and col must be in [0, Side).
func (k Kernel) At(row, col int) float32 {
	return k.weights[row*k.side+col]
}

// Side returns the kernel's side length K.
func (k Kernel) Side() int { return k.side }

// Normalizer returns the averaging divisor and whether one is present.
func (k Kernel) Normalizer() (float32, bool) { return k.div, k.hasDiv }

// isqrt returns the integer square root of n (floor).
func isqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
