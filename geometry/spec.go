package geometry

import (
	"fmt"
	"math"

	"github.com/leeforge/imgresize/errors"
)

// Kind selects how a Spec derives the target size.
type Kind int

const (
	KindScale Kind = iota + 1
	KindDimensions
)

func (k Kind) String() string {
	switch k {
	case KindScale:
		return "scale"
	case KindDimensions:
		return "resize"
	default:
		return "unknown"
	}
}

// Spec is either a uniform scale factor or an explicit width and/or height.
// Build it with ScaleSpec or DimensionsSpec.
type Spec struct {
	Kind   Kind
	Factor float64
	Width  *int
	Height *int
}

func ScaleSpec(factor float64) Spec {
	return Spec{Kind: KindScale, Factor: factor}
}

// DimensionsSpec takes nil for a side that should be inferred from the original aspect ratio.
func DimensionsSpec(width, height *int) Spec {
	return Spec{Kind: KindDimensions, Width: width, Height: height}
}

func (s Spec) String() string {
	switch s.Kind {
	case KindScale:
		return fmt.Sprintf("scale(%g)", s.Factor)
	case KindDimensions:
		return fmt.Sprintf("resize(width=%s, height=%s)", optional(s.Width), optional(s.Height))
	default:
		return "unknown"
	}
}

func optional(v *int) string {
	if v == nil {
		return "auto"
	}
	return fmt.Sprint(*v)
}

// Compute derives the complete target size for original under spec.
// Fractional results are truncated toward zero.
func Compute(original Size, spec Spec) (Size, error) {
	if !original.Valid() {
		return Size{}, errors.NewInvalidSpec(fmt.Sprintf("original size %s is not positive", original)).
			WithDetail("original", original.String())
	}

	var (
		target Size
		err    error
	)
	switch spec.Kind {
	case KindScale:
		target, err = scale(original, spec.Factor)
	case KindDimensions:
		target, err = dimensions(original, spec.Width, spec.Height)
	default:
		return Size{}, errors.NewInvalidSpec("resize specification has no mode")
	}
	if err != nil {
		return Size{}, err
	}

	if !target.Valid() {
		return Size{}, errors.NewInvalidSpec(fmt.Sprintf("%s of %s gives degenerate target size %s", spec, original, target)).
			WithDetail("target", target.String())
	}
	if target.Width > MaxDimension || target.Height > MaxDimension {
		return Size{}, errors.NewInvalidSpec(fmt.Sprintf("%s of %s gives target size %s above the maximum dimension %d", spec, original, target, MaxDimension)).
			WithDetail("target", target.String())
	}
	return target, nil
}

func scale(original Size, factor float64) (Size, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return Size{}, errors.NewInvalidSpec(fmt.Sprintf("scale factor must be a positive number, got %g", factor)).
			WithDetail("scale", factor)
	}

	w := math.Trunc(float64(original.Width) * factor)
	h := math.Trunc(float64(original.Height) * factor)
	if w > MaxDimension || h > MaxDimension {
		return Size{}, errors.NewInvalidSpec(fmt.Sprintf("scale factor %g exceeds the maximum dimension %d", factor, MaxDimension)).
			WithDetail("scale", factor)
	}
	return Size{Width: int(w), Height: int(h)}, nil
}

func dimensions(original Size, width, height *int) (Size, error) {
	if width == nil && height == nil {
		return Size{}, errors.NewInvalidSpec("resize needs --width, --height or both")
	}
	if err := checkSide("width", width); err != nil {
		return Size{}, err
	}
	if err := checkSide("height", height); err != nil {
		return Size{}, err
	}

	switch {
	case width != nil && height != nil:
		return Size{Width: *width, Height: *height}, nil
	case width != nil:
		return Size{Width: *width, Height: inferSide(original.Height, original.Width, *width)}, nil
	default:
		return Size{Width: inferSide(original.Width, original.Height, *height), Height: *height}, nil
	}
}

func checkSide(name string, v *int) error {
	if v == nil {
		return nil
	}
	if *v <= 0 {
		return errors.NewInvalidSpec(fmt.Sprintf("%s must be a positive integer, got %d", name, *v)).
			WithDetail(name, *v)
	}
	if *v > MaxDimension {
		return errors.NewInvalidSpec(fmt.Sprintf("%s %d exceeds the maximum dimension %d", name, *v, MaxDimension)).
			WithDetail(name, *v)
	}
	return nil
}

// inferSide scales other by target/known, i.e. trunc(other / (known / target)),
// in exact integer arithmetic.
func inferSide(other, known, target int) int {
	return int(int64(other) * int64(target) / int64(known))
}

// VerifyRatio reports an aspect ratio mismatch between original and target.
// The returned error is advisory and not fatal.
func VerifyRatio(original, target Size) error {
	if RatiosEqual(original, target) {
		return nil
	}
	return errors.NewAspectRatioMismatch(RatioOf(original).String(), RatioOf(target).String()).
		WithDetail("original_size", original.String()).
		WithDetail("target_size", target.String())
}
