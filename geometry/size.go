// Package geometry computes target image sizes and compares aspect ratios.
package geometry

import (
	"fmt"
	"math/big"
)

// MaxDimension bounds every computed or requested side length.
const MaxDimension = 1 << 20

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether both sides are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Ratio is a width:height ratio in lowest terms.
type Ratio struct {
	Num int64
	Den int64
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

// RatioOf reduces s to lowest terms. s must be valid.
func RatioOf(s Size) Ratio {
	r := big.NewRat(int64(s.Width), int64(s.Height))
	return Ratio{Num: r.Num().Int64(), Den: r.Denom().Int64()}
}

// RatiosEqual compares the reduced width:height fractions of a and b exactly.
// Sizes with a non-positive side never compare equal.
func RatiosEqual(a, b Size) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	ra := big.NewRat(int64(a.Width), int64(a.Height))
	rb := big.NewRat(int64(b.Width), int64(b.Height))
	return ra.Cmp(rb) == 0
}
