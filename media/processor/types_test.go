package processor

import (
	"testing"

	"github.com/nfnt/resize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeforge/imgresize/errors"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.jpg", FormatJPEG},
		{"a.JPEG", FormatJPEG},
		{"dir/a.png", FormatPNG},
		{"a.gif", FormatGIF},
		{"a.bmp", FormatBMP},
		{"a.tif", FormatTIFF},
		{"archive.tar.tiff", FormatTIFF},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPathUnsupported(t *testing.T) {
	for _, path := range []string{"a.webp", "a.txt", "noext", ".png"} {
		_, err := FormatFromPath(path)
		assert.ErrorIs(t, err, errors.ErrUnsupportedFormat, path)
	}
}

func TestFilterInterpolation(t *testing.T) {
	tests := []struct {
		filter Filter
		want   resize.InterpolationFunction
	}{
		{FilterNearest, resize.NearestNeighbor},
		{FilterBilinear, resize.Bilinear},
		{FilterBicubic, resize.Bicubic},
		{FilterMitchell, resize.MitchellNetravali},
		{FilterLanczos2, resize.Lanczos2},
		{FilterLanczos3, resize.Lanczos3},
		{"LANCZOS2", resize.Lanczos2},
		{"unknown", resize.Lanczos3},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Interpolation())
		})
	}
}
