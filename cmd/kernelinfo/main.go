// Command kernelinfo prints properties of convolution kernel presets.
//
// Usage:
//
//	kernelinfo [flags] [kernel-name ...]
//
// Without arguments it prints info for all known kernels.
//
// Examples:
//
//	kernelinfo sobel
//	kernelinfo -side 5 box gaussian
//	kernelinfo -side 7 -sigma 1.8 gaussian
//	kernelinfo -weights sharpen
//	kernelinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-conv2d/conv2d"
	"github.com/cwbudde/algo-vecmath"
)

type kernelEntry struct {
	name     string
	sized    bool
	hasSigma bool
	build    func(side int, sigma float64) (conv2d.Kernel, error)
}

var registry = []kernelEntry{
	{"box", true, false, func(side int, _ float64) (conv2d.Kernel, error) {
		return conv2d.Box(side)
	}},
	{"gaussian", true, true, conv2d.Gaussian},
	{"sobel", false, false, func(int, float64) (conv2d.Kernel, error) {
		return conv2d.Sobel(), nil
	}},
	{"sobel-y", false, false, func(int, float64) (conv2d.Kernel, error) {
		return conv2d.SobelY(), nil
	}},
	{"laplacian", false, false, func(int, float64) (conv2d.Kernel, error) {
		return conv2d.Laplacian(), nil
	}},
	{"sharpen", false, false, func(int, float64) (conv2d.Kernel, error) {
		return conv2d.Sharpen(), nil
	}},
	{"emboss", false, false, func(int, float64) (conv2d.Kernel, error) {
		return conv2d.Emboss(), nil
	}},
}

func main() {
	side := flag.Int("side", 3, "side length for sized kernels (box, gaussian)")
	sigma := flag.Float64("sigma", math.NaN(), "standard deviation for gaussian")
	fftSize := flag.Int("fft", 64, "FFT length for the frequency response")
	weights := flag.Bool("weights", false, "print the weight table for each kernel")
	list := flag.Bool("list", false, "list available kernel names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kernelinfo [flags] [kernel-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of convolution kernel presets.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo sobel laplacian\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -side 5 box\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -weights sharpen\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	kernels := resolveKernels(names, *side, *sigma)
	if len(kernels) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching kernels\n")
		os.Exit(1)
	}

	if *weights {
		for _, k := range kernels {
			printWeights(k)
		}
		return
	}

	printAnalysis(kernels, *fftSize)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

type namedKernel struct {
	name string
	k    conv2d.Kernel
}

func resolveKernels(names []string, side int, sigma float64) []namedKernel {
	byName := make(map[string]kernelEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []namedKernel
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown kernel %q (use -list to see available)\n", name)
			continue
		}

		s := sigma
		if e.hasSigma && math.IsNaN(s) {
			s = float64(side) / 3
		}
		k, err := e.build(side, s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", name, err)
			continue
		}

		label := e.name
		if e.sized {
			label = fmt.Sprintf("%s %dx%d", e.name, k.Side(), k.Side())
		}
		result = append(result, namedKernel{label, k})
	}
	return result
}

func printWeights(nk namedKernel) {
	fmt.Printf("%s:\n", nk.name)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i := 0; i < nk.k.Side(); i++ {
		for j := 0; j < nk.k.Side(); j++ {
			fmt.Fprintf(tw, "%.4g\t", nk.k.At(i, j))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	if div, ok := nk.k.Normalizer(); ok {
		fmt.Printf("normalizer: %g\n", div)
	}
	fmt.Println()
}

func printAnalysis(kernels []namedKernel, fftSize int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tSide\tNorm\tDC Gain\tNyquist H\tNyquist V\tPeak H\n")
	fmt.Fprintf(tw, "------\t----\t----\t-------\t---------\t---------\t------\n")

	for _, nk := range kernels {
		hMag, err := axisResponse(nk.k, fftSize, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", nk.name, err)
			return
		}
		vMag, err := axisResponse(nk.k, fftSize, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", nk.name, err)
			return
		}

		peak := 0.0
		for _, m := range hMag[:fftSize/2+1] {
			if m > peak {
				peak = m
			}
		}

		norm := "-"
		if div, ok := nk.k.Normalizer(); ok {
			norm = fmt.Sprintf("%g", div)
		}

		fmt.Fprintf(tw, "%s\t%d\t%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			nk.name,
			nk.k.Side(),
			norm,
			hMag[0],
			hMag[fftSize/2],
			vMag[fftSize/2],
			peak,
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// axisResponse computes the magnitude response along one frequency axis:
// the kernel is projected onto the axis (column sums for horizontal, row
// sums for vertical, normalizer applied), zero-padded to fftSize and
// transformed.
func axisResponse(k conv2d.Kernel, fftSize int, vertical bool) ([]float64, error) {
	side := k.Side()
	if fftSize < side {
		return nil, fmt.Errorf("fft size %d smaller than kernel side %d", fftSize, side)
	}

	div := 1.0
	if d, ok := k.Normalizer(); ok {
		div = float64(d)
	}

	proj := make([]float64, side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			w := float64(k.At(i, j)) / div
			if vertical {
				proj[i] += w
			} else {
				proj[j] += w
			}
		}
	}

	in := make([]complex128, fftSize)
	for i, v := range proj {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fft plan: %w", err)
	}
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fft forward: %w", err)
	}

	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}
	mag := make([]float64, fftSize)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
