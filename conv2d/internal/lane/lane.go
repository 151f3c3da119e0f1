// Package lane provides portable 4-lane float32 vector primitives for the
// convolution kernels: broadcast, multiply-add, lane-shift window
// extraction, strided channel gathers, RGB (de)interleaving and the
// widening/saturating byte conversions.
//
// Every operation is plain Go. Each lane performs exactly the arithmetic
// the scalar convolution paths perform (a float32 multiply followed by a
// float32 add, clamp before truncation), so kernels built on this package
// produce byte-identical output to the scalar reference on any
// architecture. A hardware-specific implementation of the same operations
// can be dropped in behind the arch registry without touching the kernels.
package lane

// F32x4 is a 4-lane float32 vector.
type F32x4 [4]float32

// Width is the number of lanes in an F32x4.
const Width = 4

// rgbStride is the byte distance between horizontally adjacent samples of
// one channel in an interleaved RGB buffer.
const rgbStride = 3

// Dup broadcasts a scalar into all four lanes.
func Dup(v float32) F32x4 {
	return F32x4{v, v, v, v}
}

// MulAdd returns acc[i] + v[i]*w[i] per lane.
//
// The multiply and the add round separately, matching the scalar paths.
// A fused contraction here would break cross-strategy byte equality.
func MulAdd(acc, v, w F32x4) F32x4 {
	for i := range acc {
		acc[i] += v[i] * w[i]
	}
	return acc
}

// DivScalar divides every lane by d.
func DivScalar(v F32x4, d float32) F32x4 {
	for i := range v {
		v[i] /= d
	}
	return v
}

// Ext concatenates a and b and returns lanes n..n+3, i.e. the window of
// four lanes starting n lanes into a. n must be in [0, 3].
// This is the lane-shift used to derive a kernel-column window from a
// pair of adjacent row-bank registers without re-reading memory.
func Ext(a, b F32x4, n int) F32x4 {
	var out F32x4
	for i := range out {
		s := n + i
		if s < Width {
			out[i] = a[s]
		} else {
			out[i] = b[s-Width]
		}
	}
	return out
}

// GatherRGB widens four same-channel bytes of an interleaved RGB run into
// float32 lanes: src[0], src[3], src[6], src[9].
func GatherRGB(src []uint8) F32x4 {
	return F32x4{
		float32(src[0]),
		float32(src[rgbStride]),
		float32(src[2*rgbStride]),
		float32(src[3*rgbStride]),
	}
}

// GatherRGBN widens the first n same-channel bytes of an interleaved RGB
// run, leaving the remaining lanes zero. Used for the half-filled tail
// load of a row bank, where a full 4-lane gather would read past the
// valid range.
func GatherRGBN(src []uint8, n int) F32x4 {
	var out F32x4
	for i := 0; i < n; i++ {
		out[i] = float32(src[i*rgbStride])
	}
	return out
}

// ClampU8 saturates each lane to [0, 255] and truncates toward zero.
func ClampU8(v F32x4) [4]uint8 {
	var out [4]uint8
	for i, t := range v {
		out[i] = clampU8(t)
	}
	return out
}

func clampU8(t float32) uint8 {
	if t < 0 {
		return 0
	}
	if t > 255 {
		return 255
	}
	return uint8(t)
}

// DeinterleaveRGB16 splits 48 interleaved bytes into three 16-byte
// per-channel runs.
func DeinterleaveRGB16(src []uint8) (r, g, b [16]uint8) {
	_ = src[47]
	for i := 0; i < 16; i++ {
		r[i] = src[i*rgbStride]
		g[i] = src[i*rgbStride+1]
		b[i] = src[i*rgbStride+2]
	}
	return r, g, b
}

// DeinterleaveRGB8 splits 24 interleaved bytes into three 8-byte
// per-channel runs.
func DeinterleaveRGB8(src []uint8) (r, g, b [8]uint8) {
	_ = src[23]
	for i := 0; i < 8; i++ {
		r[i] = src[i*rgbStride]
		g[i] = src[i*rgbStride+1]
		b[i] = src[i*rgbStride+2]
	}
	return r, g, b
}

// WidenU8x16 widens a 16-byte channel run into four float32 vectors.
func WidenU8x16(s [16]uint8) [4]F32x4 {
	var out [4]F32x4
	for i, b := range s {
		out[i/Width][i%Width] = float32(b)
	}
	return out
}

// WidenU8x8 widens an 8-byte channel run into two float32 vectors.
func WidenU8x8(s [8]uint8) [2]F32x4 {
	var out [2]F32x4
	for i, b := range s {
		out[i/Width][i%Width] = float32(b)
	}
	return out
}

// PackU8x16 saturates four float32 vectors of one channel into a 16-byte
// run.
func PackU8x16(v [4]F32x4) [16]uint8 {
	var out [16]uint8
	for i := range v {
		for z, t := range v[i] {
			out[i*Width+z] = clampU8(t)
		}
	}
	return out
}

// InterleaveRGB16 merges three 16-byte channel runs back into 48
// interleaved bytes of dst.
func InterleaveRGB16(dst []uint8, r, g, b [16]uint8) {
	_ = dst[47]
	for i := 0; i < 16; i++ {
		dst[i*rgbStride] = r[i]
		dst[i*rgbStride+1] = g[i]
		dst[i*rgbStride+2] = b[i]
	}
}
