package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-conv2d/conv2d"
)

// presetNames lists the kernel specs accepted by --kernel, in display
// order for the list command.
var presetNames = []string{
	"box[:side]",
	"gaussian[:side[:sigma]]",
	"sobel",
	"sobel-y",
	"laplacian",
	"sharpen",
	"emboss",
}

// parseKernelSpec resolves a --kernel value of the form
// name[:side[:sigma]] into a kernel.
func parseKernelSpec(spec string) (conv2d.Kernel, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), ":")
	name := parts[0]

	side := 3
	sigma := 1.0
	if len(parts) > 1 {
		v, err := strconv.Atoi(parts[1])
		if err != nil {
			return conv2d.Kernel{}, fmt.Errorf("invalid kernel side %q: %w", parts[1], err)
		}
		side = v
	}
	if len(parts) > 2 {
		v, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return conv2d.Kernel{}, fmt.Errorf("invalid kernel sigma %q: %w", parts[2], err)
		}
		sigma = v
	}

	switch name {
	case "box":
		return conv2d.Box(side)
	case "gaussian":
		if len(parts) <= 2 {
			sigma = float64(side) / 3
		}
		return conv2d.Gaussian(side, sigma)
	case "sobel":
		return conv2d.Sobel(), nil
	case "sobel-y":
		return conv2d.SobelY(), nil
	case "laplacian":
		return conv2d.Laplacian(), nil
	case "sharpen":
		return conv2d.Sharpen(), nil
	case "emboss":
		return conv2d.Emboss(), nil
	default:
		return conv2d.Kernel{}, fmt.Errorf("unknown kernel %q (see 'imgfilter list')", name)
	}
}
