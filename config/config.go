package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	validatorV10 "github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/leeforge/imgresize/errors"
)

var validator = validatorV10.New()

func DefaultOptions() Options {
	basePath := os.Getenv("IMGRESIZE_CONFIG_PATH")
	if basePath == "" {
		basePath = "."
	}

	return Options{
		BasePath:  basePath,
		FileName:  "imgresize",
		FileType:  "yaml",
		EnvPrefix: "IMGRESIZE",
	}
}

// Load reads config files and environment overrides into Settings.
// A missing config file is not an error unless opts.File names it.
func Load(opts Options) (*Settings, error) {
	v, err := newViper(opts)
	if err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := defaults.Set(settings); err != nil {
		return nil, errors.NewInvalidConfig("failed to set config defaults", err)
	}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.NewInvalidConfig(fmt.Sprintf("failed to decode config: %v", err), err)
	}
	if err := defaults.Set(settings); err != nil {
		return nil, errors.NewInvalidConfig("failed to set config defaults after decoding", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks every field against its validate tag.
func (s *Settings) Validate() error {
	err := validator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validatorV10.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return errors.NewInvalidConfig(fmt.Sprintf("invalid config: %v", err), err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fmt.Sprintf("%s %s", fieldName(fe), getValidationMessage(fe)))
	}
	return errors.NewInvalidConfig("invalid config: "+strings.Join(messages, "; "), err)
}

func newViper(opts Options) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType(opts.FileType)

	paths, err := configFilePaths(opts)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		tempV := viper.New()
		tempV.SetConfigFile(path)
		if err := tempV.ReadInConfig(); err != nil {
			return nil, errors.NewInvalidConfig(fmt.Sprintf("error reading config file %s: %v", path, err), err).
				WithDetail("path", path)
		}
		for _, key := range tempV.AllKeys() {
			v.Set(key, tempV.Get(key))
		}
	}

	// Environment variables take priority over file values.
	replacer := strings.NewReplacer(".", "_", "-", "_")
	for _, key := range keys {
		envKey := strings.ToUpper(replacer.Replace(key))
		if opts.EnvPrefix != "" {
			envKey = opts.EnvPrefix + "_" + envKey
		}
		if envValue, ok := os.LookupEnv(envKey); ok && envValue != "" {
			v.Set(key, envValue)
		}
	}

	return v, nil
}

// configFilePaths returns <name>.<type> and <name>.local.<type> when present.
func configFilePaths(opts Options) ([]string, error) {
	if opts.File != "" {
		info, err := os.Stat(opts.File)
		if err != nil {
			return nil, errors.NewInvalidConfig(fmt.Sprintf("cannot read config file: %s", opts.File), err).
				WithDetail("path", opts.File)
		}
		if info.IsDir() {
			return nil, errors.NewInvalidConfig(fmt.Sprintf("config path is a directory: %s", opts.File), nil).
				WithDetail("path", opts.File)
		}
		return []string{opts.File}, nil
	}

	var files []string
	for _, name := range []string{opts.FileName, opts.FileName + ".local"} {
		file := filepath.Join(opts.BasePath, fmt.Sprintf("%s.%s", name, opts.FileType))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			files = append(files, file)
		}
	}
	return files, nil
}
