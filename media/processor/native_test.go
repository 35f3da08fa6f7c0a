package processor

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeforge/imgresize/errors"
	"github.com/leeforge/imgresize/geometry"
	imgtesting "github.com/leeforge/imgresize/testing"
)

func TestLoad(t *testing.T) {
	path := imgtesting.WritePNG(t, t.TempDir(), "src.png", imgtesting.Gradient(40, 20))

	p := NewNativeProcessor(FilterLanczos3, DefaultEncodeOptions())
	img, err := p.Load(path)
	require.NoError(t, err)
	assert.Equal(t, geometry.Size{Width: 40, Height: 20}, img.Size)
	assert.Equal(t, FormatPNG, img.Format)
}

func TestLoadMissingFile(t *testing.T) {
	p := NewNativeProcessor(FilterLanczos3, DefaultEncodeOptions())
	_, err := p.Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, errors.ErrImageNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	p := NewNativeProcessor(FilterLanczos3, DefaultEncodeOptions())
	_, err := p.Load(path)
	assert.ErrorIs(t, err, errors.ErrImageNotFound)
}

func TestResample(t *testing.T) {
	p := NewNativeProcessor(FilterBilinear, DefaultEncodeOptions())
	out := p.Resample(imgtesting.Gradient(100, 50), geometry.Size{Width: 30, Height: 17})
	assert.Equal(t, 30, out.Bounds().Dx())
	assert.Equal(t, 17, out.Bounds().Dy())
}

func TestEncodeRoundTripsEveryWritableFormat(t *testing.T) {
	p := NewNativeProcessor(FilterLanczos3, EncodeOptions{JPEGQuality: 75, PNGCompression: "best"})
	src := imgtesting.Gradient(12, 9)

	for _, format := range []Format{FormatJPEG, FormatPNG, FormatGIF, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, p.Encode(&buf, src, format))

			cfg, decoded, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, 12, cfg.Width)
			assert.Equal(t, 9, cfg.Height)
			assert.Equal(t, string(format), decoded)
		})
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	p := NewNativeProcessor(FilterLanczos3, DefaultEncodeOptions())
	assert.Error(t, p.Encode(&bytes.Buffer{}, imgtesting.Gradient(2, 2), FormatWEBP))
}

func TestNewNativeProcessorClampsQuality(t *testing.T) {
	p := NewNativeProcessor(FilterLanczos3, EncodeOptions{JPEGQuality: 500})
	assert.Equal(t, 90, p.options.JPEGQuality)
}
