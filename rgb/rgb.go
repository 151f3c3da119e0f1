// Package rgb provides a minimal interleaved RGB raster container.
//
// An Image stores height*width*3 bytes in row-major, channel-interleaved
// order (R, G, B, R, G, B, ...). The byte at (row y, column x, channel c)
// lives at index y*width*3 + x*3 + c.
//
// The package deliberately carries no color management, no alpha channel
// and no subimage views: it is the pixel-buffer collaborator for the
// conv2d package, which needs nothing more than raw interleaved bytes
// plus dimensions.
package rgb

import "bytes"

// Channels is the number of interleaved channels per pixel.
const Channels = 3

// Image is an interleaved RGB raster. The zero value is an empty image.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// FromRaw wraps an interleaved RGB byte buffer as an Image.
// The buffer is not copied; the caller must not modify it afterwards.
// Panics if len(pix) != width*height*3 or a dimension is negative.
func FromRaw(pix []uint8, width, height int) *Image {
	if width < 0 || height < 0 || len(pix) != width*height*Channels {
		panic("rgb: pixel buffer length does not match dimensions")
	}
	return &Image{width: width, height: height, pix: pix}
}

// New returns a zero-initialized (black) image of the given dimensions.
func New(width, height int) *Image {
	return FromRaw(make([]uint8, width*height*Channels), width, height)
}

// Empty returns a placeholder image with no pixels.
func Empty() *Image {
	return &Image{}
}

// Width returns the number of pixel columns.
func (img *Image) Width() int { return img.width }

// Height returns the number of pixel rows.
func (img *Image) Height() int { return img.height }

// Stride returns the number of bytes per pixel row.
func (img *Image) Stride() int { return img.width * Channels }

// Content returns the underlying interleaved byte buffer.
// The returned slice must be treated as read-only.
func (img *Image) Content() []uint8 { return img.pix }

// At returns the R, G, B bytes of the pixel at column x, row y.
func (img *Image) At(x, y int) (r, g, b uint8) {
	i := y*img.width*Channels + x*Channels
	return img.pix[i], img.pix[i+1], img.pix[i+2]
}

// Set stores the R, G, B bytes of the pixel at column x, row y.
func (img *Image) Set(x, y int, r, g, b uint8) {
	i := y*img.width*Channels + x*Channels
	img.pix[i] = r
	img.pix[i+1] = g
	img.pix[i+2] = b
}

// Equal reports whether two images have identical dimensions and
// pixel-exact content.
func (img *Image) Equal(other *Image) bool {
	if other == nil {
		return false
	}
	if img.width != other.width || img.height != other.height {
		return false
	}
	return bytes.Equal(img.pix, other.pix)
}
