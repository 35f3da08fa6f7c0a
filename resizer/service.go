// Package resizer runs one load, size, resample and save pass over a single image.
package resizer

import (
	"bytes"
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/leeforge/imgresize/errors"
	"github.com/leeforge/imgresize/geometry"
	"github.com/leeforge/imgresize/logging"
	"github.com/leeforge/imgresize/media/processor"
	"github.com/leeforge/imgresize/media/storage"
)

// Request is one invocation: an input image, how to size it, and where to put it.
type Request struct {
	Input string
	Spec  geometry.Spec
	// Output overrides the derived "<stem>__<w>x<h><ext>" name when set.
	Output string
}

// Result describes the written image.
type Result struct {
	Input    string           `json:"input"`
	Output   string           `json:"output"`
	Mode     string           `json:"mode"`
	Original geometry.Size    `json:"original"`
	Target   geometry.Size    `json:"target"`
	Format   processor.Format `json:"format"`
	Bytes    int64            `json:"bytes"`
	Warnings []string         `json:"warnings" default:"[]"`
}

type Service struct {
	processor    processor.Resizer
	storage      storage.Provider
	logger       logging.Logger
	keepExisting bool
}

type Option func(*Service)

// WithKeepExisting makes Run fail instead of replacing an existing output file.
func WithKeepExisting(keep bool) Option {
	return func(s *Service) {
		s.keepExisting = keep
	}
}

func NewService(proc processor.Resizer, store storage.Provider, logger logging.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Service{
		processor: proc,
		storage:   store,
		logger:    logger.Named("resizer"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run resizes req.Input and persists the result. Only an aspect ratio change is
// reported without failing; it ends up in Result.Warnings.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	log := s.logger.With(zap.String("input", req.Input), zap.Stringer("spec", req.Spec))

	img, err := s.processor.Load(req.Input)
	if err != nil {
		return nil, err
	}
	log.Debug("image loaded", zap.Stringer("size", img.Size), zap.String("format", string(img.Format)))

	target, err := geometry.Compute(img.Size, req.Spec)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Input:    req.Input,
		Mode:     req.Spec.Kind.String(),
		Original: img.Size,
		Target:   target,
	}

	if err := geometry.VerifyRatio(img.Size, target); err != nil {
		if !stderrors.Is(err, errors.ErrAspectRatioMismatch) || errors.FromError(err).Fatal() {
			return nil, err
		}
		result.Warnings = append(result.Warnings, err.Error())
		log.Warn(err.Error(), zap.Stringer("original", img.Size), zap.Stringer("target", target))
	}

	output := req.Output
	if output == "" {
		output = geometry.DeriveName(req.Input, target)
	}
	format, err := processor.FormatFromPath(output)
	if err != nil {
		return nil, err
	}
	result.Format = format

	if err := interrupted(ctx); err != nil {
		return nil, err
	}

	resampled := s.processor.Resample(img.Pixels, target)

	var buf bytes.Buffer
	if err := s.processor.Encode(&buf, resampled, format); err != nil {
		return nil, errors.NewWriteFailed(output, err)
	}

	saved, err := s.storage.Save(ctx, storage.SaveInput{
		File:      &buf,
		Path:      output,
		Overwrite: !s.keepExisting,
	})
	if err != nil {
		return nil, err
	}

	result.Output = saved.Path
	result.Bytes = saved.Size
	log.Info("image resized",
		zap.String("output", saved.Path),
		zap.String("storage", s.storage.Name()),
		zap.Stringer("target", target),
		zap.Int64("bytes", saved.Size),
	)
	return result, nil
}

func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithType(err, errors.ErrorTypeInternal, "interrupted: "+err.Error())
	}
	return nil
}
