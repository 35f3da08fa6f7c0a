package processor

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Registers the webp decoder with image.Decode.
	_ "golang.org/x/image/webp"

	"github.com/leeforge/imgresize/errors"
	"github.com/leeforge/imgresize/geometry"
)

// Image is a decoded source image together with its original size.
type Image struct {
	Pixels image.Image
	Format Format
	Size   geometry.Size
}

// Resizer resamples decoded images and moves them to and from byte streams.
type Resizer interface {
	// Load decodes the image at path, closing the file before returning.
	Load(path string) (*Image, error)
	// Resample returns img scaled to size.
	Resample(img image.Image, size geometry.Size) image.Image
	// Encode writes img to w in the given format.
	Encode(w io.Writer, img image.Image, format Format) error
}

// NativeProcessor implements Resizer using pure Go libraries
// This avoids CGO dependency (libvips) for easier deployment
type NativeProcessor struct {
	filter  Filter
	options EncodeOptions
}

func NewNativeProcessor(filter Filter, options EncodeOptions) *NativeProcessor {
	if options.JPEGQuality <= 0 || options.JPEGQuality > 100 {
		options.JPEGQuality = DefaultEncodeOptions().JPEGQuality
	}
	return &NativeProcessor{filter: filter, options: options}
}

func (p *NativeProcessor) Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewImageNotFound(path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, errors.NewImageNotFound(path, err)
	}

	bounds := img.Bounds()
	return &Image{
		Pixels: img,
		Format: Format(format),
		Size:   geometry.Size{Width: bounds.Dx(), Height: bounds.Dy()},
	}, nil
}

func (p *NativeProcessor) Resample(img image.Image, size geometry.Size) image.Image {
	return resize.Resize(uint(size.Width), uint(size.Height), img, p.filter.Interpolation())
}

func (p *NativeProcessor) Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: p.options.JPEGQuality})
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: pngCompression(p.options.PNGCompression)}
		return enc.Encode(w, img)
	case FormatGIF:
		return gif.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("no encoder for format %q", format)
	}
}

func pngCompression(level string) png.CompressionLevel {
	switch level {
	case "none":
		return png.NoCompression
	case "speed":
		return png.BestSpeed
	case "best":
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}

var _ Resizer = (*NativeProcessor)(nil)
