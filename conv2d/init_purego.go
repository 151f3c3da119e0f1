//go:build purego

package conv2d

import (
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/generic"
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
)
