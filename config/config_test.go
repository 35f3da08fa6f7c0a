package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeforge/imgresize/errors"
)

func testOptions(dir string) Options {
	opts := DefaultOptions()
	opts.BasePath = dir
	return opts
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	settings, err := Load(testOptions(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, "lanczos3", settings.Resample.Filter)
	assert.Equal(t, 90, settings.Encode.JPEGQuality)
	assert.Equal(t, "default", settings.Encode.PNGCompression)
	assert.False(t, settings.Output.KeepExisting)
	assert.Equal(t, "warn", settings.Log.Level)
	assert.Equal(t, "stderr", settings.Log.Terminal)
}

func TestLoadMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imgresize.yaml"), []byte(`
resample:
  filter: bilinear
encode:
  jpeg-quality: 70
output:
  keep-existing: true
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imgresize.local.yaml"), []byte(`
encode:
  jpeg-quality: 55
`), 0o644))

	settings, err := Load(testOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, "bilinear", settings.Resample.Filter)
	assert.Equal(t, 55, settings.Encode.JPEGQuality)
	assert.True(t, settings.Output.KeepExisting)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imgresize.yaml"), []byte("encode:\n  jpeg-quality: 70\n"), 0o644))
	t.Setenv("IMGRESIZE_ENCODE_JPEG_QUALITY", "42")
	t.Setenv("IMGRESIZE_LOG_LEVEL", "debug")

	settings, err := Load(testOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, 42, settings.Encode.JPEGQuality)
	assert.Equal(t, "debug", settings.Log.Level)
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resample:\n  filter: nearest\n"), 0o644))

	opts := testOptions(t.TempDir())
	opts.File = path
	settings, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "nearest", settings.Resample.Filter)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	opts := testOptions(t.TempDir())
	opts.File = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(opts)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"unknown filter", "resample:\n  filter: sharpest\n", "resample.Filter must be one of"},
		{"quality too high", "encode:\n  jpeg-quality: 101\n", "encode.JPEGQuality must be less than or equal to 100"},
		{"bad log level", "log:\n  level: loud\n", "log.Level must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "imgresize.yaml"), []byte(tt.content), 0o644))

			_, err := Load(testOptions(dir))
			require.ErrorIs(t, err, errors.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imgresize.yaml"), []byte("resample: [unterminated\n"), 0o644))

	_, err := Load(testOptions(dir))
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}
