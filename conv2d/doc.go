// Package conv2d computes 2D spatial convolution over interleaved RGB
// rasters and offers several functionally equivalent application
// strategies with increasing vectorization sophistication.
//
// A [Kernel] validates and stores an immutable square weight matrix with
// an optional averaging normalizer. A [Processor] wraps one kernel and
// exposes five interchangeable strategies over an [rgb.Image]:
//
//   - [Processor.ApplyScalar]: channel-outer scalar reference
//   - [Processor.ApplyScalarFused]: channel-inner scalar, window reused
//     across channels
//   - [Processor.ApplyVec4]: 4 output columns per iteration with strided
//     per-tap gathers
//   - [Processor.ApplyVec4Cached]: 4 output columns with a per-row
//     register bank and lane-shift window derivation
//   - [Processor.ApplyVec16]: 16 output columns with deinterleaving
//     loads, widening conversions and saturating packed stores
//
// All strategies produce byte-identical output for the same kernel and
// image; this equivalence is the package's central correctness property.
// [Processor.Apply] selects the preferred strategy for the running CPU
// through the arch registry, with the fused scalar path as the portable
// fallback (build with the purego tag to force it).
//
// # Border policy
//
// The convolution is computed for the valid region only: output pixels
// within side/2 of any edge are left at zero, giving a black frame of
// that thickness. There is no replicate, reflect or wrap padding. Callers
// expecting padded output must handle the frame themselves.
//
// # Usage
//
//	k, err := conv2d.Box(5)
//	if err != nil {
//		...
//	}
//	blurred := conv2d.NewProcessor(k).Apply(img)
package conv2d
