package rgb

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned by Save for file extensions other
// than .png, .jpg/.jpeg and .bmp.
var ErrUnsupportedFormat = errors.New("rgb: unsupported image format")

// jpegQuality is used when encoding .jpg/.jpeg output.
const jpegQuality = 95

// Load reads an image file and converts it to an interleaved RGB raster.
// PNG, JPEG and BMP inputs are supported; alpha is dropped.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rgb: open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("rgb: decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pix := make([]uint8, width*height*Channels)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			pix[i] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(b >> 8)
			i += Channels
		}
	}

	return FromRaw(pix, width, height), nil
}

// Save writes the image to path; the encoder is chosen by extension
// (.png, .jpg, .jpeg or .bmp).
func Save(img *Image, path string) error {
	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	i := 0
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			out.SetNRGBA(x, y, color.NRGBA{
				R: img.pix[i],
				G: img.pix[i+1],
				B: img.pix[i+2],
				A: 0xff,
			})
			i += Channels
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rgb: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, out)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, out, &jpeg.Options{Quality: jpegQuality})
	case ".bmp":
		err = bmp.Encode(f, out)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("rgb: encode %s: %w", path, err)
	}

	return f.Close()
}
