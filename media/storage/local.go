package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/leeforge/imgresize/errors"
)

// LocalProvider implements Provider for the local filesystem.
// Relative paths resolve against basePath; an empty basePath means the working directory.
type LocalProvider struct {
	basePath string
}

// NewLocalProvider creates a new local storage provider
func NewLocalProvider(basePath string) *LocalProvider {
	return &LocalProvider{basePath: basePath}
}

func (p *LocalProvider) resolve(path string) string {
	if p.basePath == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.basePath, path)
}

// Save writes input.File next to its destination under a temporary name and
// renames it into place, so a failed run never leaves a truncated image behind.
func (p *LocalProvider) Save(ctx context.Context, input SaveInput) (SaveOutput, error) {
	fullPath := p.resolve(input.Path)

	if err := ctx.Err(); err != nil {
		return SaveOutput{}, errors.NewWriteFailed(fullPath, err)
	}

	if !input.Overwrite {
		exists, err := p.Exists(ctx, input.Path)
		if err != nil {
			return SaveOutput{}, errors.NewWriteFailed(fullPath, err)
		}
		if exists {
			return SaveOutput{}, errors.NewWriteFailed(fullPath, os.ErrExist).
				WithMessage(fmt.Sprintf("output already exists: %s", fullPath))
		}
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return SaveOutput{}, errors.NewWriteFailed(fullPath, fmt.Errorf("failed to create directory: %w", err))
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(fullPath), uuid.NewString()))
	size, err := writeFile(tmpPath, input.File)
	if err != nil {
		_ = os.Remove(tmpPath)
		return SaveOutput{}, errors.NewWriteFailed(fullPath, err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		_ = os.Remove(tmpPath)
		return SaveOutput{}, errors.NewWriteFailed(fullPath, err)
	}

	return SaveOutput{Path: fullPath, Size: size}, nil
}

func writeFile(path string, r io.Reader) (int64, error) {
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	size, err := io.Copy(dst, r)
	if err != nil {
		dst.Close()
		return 0, fmt.Errorf("failed to write file content: %w", err)
	}
	if err := dst.Close(); err != nil {
		return 0, fmt.Errorf("failed to close file: %w", err)
	}
	return size, nil
}

// Exists checks if a file exists
func (p *LocalProvider) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(p.resolve(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (p *LocalProvider) Name() string {
	return "local"
}

var _ Provider = (*LocalProvider)(nil)
