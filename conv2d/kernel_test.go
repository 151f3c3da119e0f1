package conv2d

import (
	"errors"
	"testing"
)

func TestNewKernelValidation(t *testing.T) {
	tests := []struct {
		name      string
		weights   []float32
		averaging bool
		wantErr   error
	}{
		{
			name:    "valid 3x3",
			weights: make([]float32, 9),
		},
		{
			name:    "valid 5x5",
			weights: make([]float32, 25),
		},
		{
			name:    "eight weights",
			weights: make([]float32, 8),
			wantErr: ErrKernelShape,
		},
		{
			name:    "side four",
			weights: make([]float32, 16),
			wantErr: ErrKernelSize,
		},
		{
			name:    "side one",
			weights: make([]float32, 1),
			wantErr: ErrKernelSize,
		},
		{
			name:      "zero sum averaging",
			weights:   make([]float32, 9),
			averaging: true,
			wantErr:   ErrZeroNormalizer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKernel(tt.weights, tt.averaging)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestKernelAt(t *testing.T) {
	weights := []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	k, err := NewKernel(weights, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if k.Side() != 3 {
		t.Fatalf("Side() = %d, expected 3", k.Side())
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got := k.At(i, j); got != weights[i*3+j] {
				t.Errorf("At(%d,%d) = %v, expected %v", i, j, got, weights[i*3+j])
			}
		}
	}
	if _, ok := k.Normalizer(); ok {
		t.Error("non-averaging kernel should carry no normalizer")
	}
}

func TestKernelNormalizer(t *testing.T) {
	weights := []float32{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}
	k, err := NewKernel(weights, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	div, ok := k.Normalizer()
	if !ok || div != 9 {
		t.Fatalf("Normalizer() = %v, %v, expected 9, true", div, ok)
	}
}

func TestKernelImmutable(t *testing.T) {
	weights := []float32{1, 0, 0, 0, 0, 0, 0, 0, 0}
	k, err := NewKernel(weights, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	weights[0] = 42
	if got := k.At(0, 0); got != 1 {
		t.Fatalf("kernel aliases caller weights: At(0,0) = %v", got)
	}
}

func TestPresets(t *testing.T) {
	box, err := Box(5)
	if err != nil {
		t.Fatalf("Box(5): %v", err)
	}
	if box.Side() != 5 {
		t.Errorf("Box(5).Side() = %d", box.Side())
	}
	if div, ok := box.Normalizer(); !ok || div != 25 {
		t.Errorf("Box(5).Normalizer() = %v, %v", div, ok)
	}

	if _, err := Box(4); !errors.Is(err, ErrKernelSize) {
		t.Errorf("Box(4) error = %v, expected ErrKernelSize", err)
	}

	sobel := Sobel()
	if sobel.Side() != 3 || sobel.At(1, 0) != -2 || sobel.At(1, 2) != 2 {
		t.Error("unexpected Sobel weights")
	}
	if _, ok := sobel.Normalizer(); ok {
		t.Error("Sobel should not normalize")
	}

	gauss, err := Gaussian(5, 1.2)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	if gauss.At(2, 2) != 1 {
		t.Errorf("Gaussian center weight = %v, expected 1", gauss.At(2, 2))
	}
	if gauss.At(0, 1) != gauss.At(4, 3) {
		t.Error("Gaussian weights not point-symmetric")
	}
	if _, err := Gaussian(5, 0); !errors.Is(err, ErrSigma) {
		t.Errorf("Gaussian(5, 0) error = %v, expected ErrSigma", err)
	}
	if _, err := Gaussian(2, 1); !errors.Is(err, ErrKernelSize) {
		t.Errorf("Gaussian(2, 1) error = %v, expected ErrKernelSize", err)
	}
}
