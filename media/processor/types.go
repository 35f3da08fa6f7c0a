package processor

import (
	"strings"

	"github.com/nfnt/resize"

	"github.com/leeforge/imgresize/errors"
	"github.com/leeforge/imgresize/geometry"
)

// Format names an image encoding.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWEBP Format = "webp"
)

// Extensions recognised for output, lower case with the leading dot.
var extensionFormats = map[string]Format{
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".png":  FormatPNG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// FormatFromPath infers the output encoding from the final extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(geometry.Ext(path))
	if f, ok := extensionFormats[ext]; ok {
		return f, nil
	}
	return "", errors.NewUnsupportedFormat(path, ext)
}

// Filter names a resampling kernel offered by nfnt/resize.
type Filter string

const (
	FilterNearest  Filter = "nearest"
	FilterBilinear Filter = "bilinear"
	FilterBicubic  Filter = "bicubic"
	FilterMitchell Filter = "mitchell"
	FilterLanczos2 Filter = "lanczos2"
	FilterLanczos3 Filter = "lanczos3"
)

// Interpolation maps the filter to its nfnt/resize kernel. Unknown names use Lanczos3.
func (f Filter) Interpolation() resize.InterpolationFunction {
	switch Filter(strings.ToLower(string(f))) {
	case FilterNearest:
		return resize.NearestNeighbor
	case FilterBilinear:
		return resize.Bilinear
	case FilterBicubic:
		return resize.Bicubic
	case FilterMitchell:
		return resize.MitchellNetravali
	case FilterLanczos2:
		return resize.Lanczos2
	default:
		return resize.Lanczos3
	}
}

// EncodeOptions tunes the encoders that have knobs.
type EncodeOptions struct {
	JPEGQuality    int
	PNGCompression string
}

// DefaultEncodeOptions returns the options used when none are configured.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{JPEGQuality: 90, PNGCompression: "default"}
}
