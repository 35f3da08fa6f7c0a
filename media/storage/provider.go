package storage

import (
	"context"
	"io"
)

// Provider persists encoded images.
type Provider interface {
	Save(ctx context.Context, input SaveInput) (SaveOutput, error)
	Exists(ctx context.Context, path string) (bool, error)
	Name() string
}

// SaveInput describes one file to write.
type SaveInput struct {
	File      io.Reader
	Path      string
	Overwrite bool
}

// SaveOutput reports where the file ended up.
type SaveOutput struct {
	Path string
	Size int64
}
