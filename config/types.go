package config

import "github.com/leeforge/imgresize/logging"

// Settings is everything imgresize reads from config files and IMGRESIZE_* variables.
type Settings struct {
	Resample ResampleSettings `mapstructure:"resample" json:"resample" yaml:"resample"`
	Encode   EncodeSettings   `mapstructure:"encode" json:"encode" yaml:"encode"`
	Output   OutputSettings   `mapstructure:"output" json:"output" yaml:"output"`
	Log      logging.Config   `mapstructure:"log" json:"log" yaml:"log"`
}

type ResampleSettings struct {
	// Filter is the nfnt/resize kernel used for resampling.
	Filter string `mapstructure:"filter" json:"filter" yaml:"filter" default:"lanczos3" validate:"oneof=nearest bilinear bicubic mitchell lanczos2 lanczos3"`
}

type EncodeSettings struct {
	JPEGQuality    int    `mapstructure:"jpeg-quality" json:"jpegQuality" yaml:"jpeg-quality" default:"90" validate:"gte=1,lte=100"`
	PNGCompression string `mapstructure:"png-compression" json:"pngCompression" yaml:"png-compression" default:"default" validate:"oneof=default none speed best"`
}

type OutputSettings struct {
	// KeepExisting refuses to replace an existing output file.
	KeepExisting bool `mapstructure:"keep-existing" json:"keepExisting" yaml:"keep-existing"`
	// Dir resolves relative output paths; empty means the working directory.
	Dir string `mapstructure:"dir" json:"dir" yaml:"dir"`
}

// Options locates the config file.
type Options struct {
	// File is an explicit config path; when set it must exist.
	File      string
	BasePath  string
	FileName  string
	FileType  string
	EnvPrefix string
}

// keys lists every setting so environment variables apply without a config file.
var keys = []string{
	"resample.filter",
	"encode.jpeg-quality",
	"encode.png-compression",
	"output.keep-existing",
	"output.dir",
	"log.level",
	"log.format",
	"log.terminal",
	"log.file",
	"log.time-format",
	"log.max-size",
	"log.max-backups",
	"log.max-age",
	"log.compress",
	"log.show-line-number",
}
