package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cwbudde/algo-conv2d/conv2d"
	"github.com/cwbudde/algo-conv2d/rgb"
	"github.com/spf13/cobra"
)

var (
	inPath     string
	outPath    string
	kernelSpec string
	strategy   string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Convolve an image file with a kernel",
	Long: `Loads an image, convolves it with the selected kernel and writes the
result. The output format is chosen by the output file extension
(.png, .jpg, .jpeg or .bmp).`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&inPath, "in", "", "Input image path (required)")
	applyCmd.Flags().StringVar(&outPath, "out", "out.png", "Output image path")
	applyCmd.Flags().StringVar(&kernelSpec, "kernel", "box:3", "Kernel spec: name[:side[:sigma]]")
	applyCmd.Flags().StringVar(&strategy, "strategy", "auto", "Strategy: auto, scalar, scalar-fused, vec4, vec4-cached, vec16")

	applyCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	k, err := parseKernelSpec(kernelSpec)
	if err != nil {
		return err
	}

	src, err := rgb.Load(inPath)
	if err != nil {
		return err
	}
	slog.Info("Loaded image", "path", inPath, "width", src.Width(), "height", src.Height())

	p := conv2d.NewProcessor(k)
	apply, err := strategyFn(strategy)
	if err != nil {
		return err
	}

	start := time.Now()
	out := apply(p, src)
	elapsed := time.Since(start)

	name := strategy
	if strategy == "auto" {
		name = conv2d.ActiveStrategy()
	}
	slog.Info("Convolved image",
		"kernel", kernelSpec,
		"side", k.Side(),
		"strategy", name,
		"elapsed", elapsed,
	)

	if err := rgb.Save(out, outPath); err != nil {
		return err
	}
	slog.Info("Wrote output", "path", outPath)

	return nil
}

func strategyFn(name string) (func(*conv2d.Processor, *rgb.Image) *rgb.Image, error) {
	switch name {
	case "auto":
		return (*conv2d.Processor).Apply, nil
	case "scalar":
		return (*conv2d.Processor).ApplyScalar, nil
	case "scalar-fused":
		return (*conv2d.Processor).ApplyScalarFused, nil
	case "vec4":
		return (*conv2d.Processor).ApplyVec4, nil
	case "vec4-cached":
		return (*conv2d.Processor).ApplyVec4Cached, nil
	case "vec16":
		return (*conv2d.Processor).ApplyVec16, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (see 'imgfilter list')", name)
	}
}
