// Package domain contains the core resolution and aspect-ratio types.
package domain

import (
	"math"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ratioEpsilon is the absolute tolerance used for all aspect-ratio and
// whole-number comparisons. Ratio values are derived from float division, so
// exact equality is not part of the contract; two ratios within this distance
// are considered equal.
const ratioEpsilon = 1e-9

// AspectRatio is a width-to-height proportion, stored as a single value
// (width units per height unit). The zero value is not a valid ratio; use
// NewAspectRatio, ParseAspectRatio or one of the exported well-known values.
type AspectRatio struct {
	ratio float64
}

// Well-known aspect ratios.
var (
	// SixteenNine is the conventional widescreen ratio.
	SixteenNine = AspectRatio{ratio: 16.0 / 9.0}

	// FourThree is the classic monitor ratio.
	FourThree = AspectRatio{ratio: 4.0 / 3.0}

	// Ultrawide is the 21:9 ultrawide monitor ratio.
	Ultrawide = AspectRatio{ratio: 21.0 / 9.0}

	// Square is the 1:1 ratio.
	Square = AspectRatio{ratio: 1}
)

// NewAspectRatio creates an AspectRatio from a width and height.
// Both dimensions must be positive and finite.
func NewAspectRatio(width, height float64) (AspectRatio, error) {
	if !positiveFinite(width) {
		return AspectRatio{}, zerr.With(ErrInvalidAspectRatio, "width", width)
	}
	if !positiveFinite(height) {
		return AspectRatio{}, zerr.With(ErrInvalidAspectRatio, "height", height)
	}
	return AspectRatio{ratio: width / height}, nil
}

// ParseAspectRatio parses an aspect ratio from its textual form.
// It accepts "W:H" (e.g. "16:9") and plain decimal values (e.g. "1.85").
func ParseAspectRatio(s string) (AspectRatio, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AspectRatio{}, zerr.With(ErrInvalidRatioFormat, "input", s)
	}

	if w, h, ok := strings.Cut(s, ":"); ok {
		width, errW := strconv.ParseFloat(w, 64)
		height, errH := strconv.ParseFloat(h, 64)
		if errW != nil || errH != nil {
			return AspectRatio{}, zerr.With(ErrInvalidRatioFormat, "input", s)
		}
		ratio, err := NewAspectRatio(width, height)
		if err != nil {
			return AspectRatio{}, zerr.With(err, "input", s)
		}
		return ratio, nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return AspectRatio{}, zerr.With(ErrInvalidRatioFormat, "input", s)
	}
	if !positiveFinite(value) {
		return AspectRatio{}, zerr.With(ErrInvalidAspectRatio, "value", value)
	}
	return AspectRatio{ratio: value}, nil
}

// Value returns the ratio value (width units per height unit).
func (a AspectRatio) Value() float64 {
	return a.ratio
}

// Equal reports whether two ratios are equal within ratioEpsilon.
func (a AspectRatio) Equal(b AspectRatio) bool {
	return math.Abs(a.ratio-b.ratio) <= ratioEpsilon
}

// String renders well-known ratios in their conventional "W:H" form and
// everything else as a plain decimal.
func (a AspectRatio) String() string {
	switch {
	case a.Equal(SixteenNine):
		return "16:9"
	case a.Equal(FourThree):
		return "4:3"
	case a.Equal(Ultrawide):
		return "21:9"
	case a.Equal(Square):
		return "1:1"
	default:
		return strconv.FormatFloat(a.ratio, 'g', -1, 64)
	}
}

// wholeNumber reports whether x has no fractional component, within
// ratioEpsilon.
func wholeNumber(x float64) bool {
	return math.Abs(x-math.Round(x)) <= ratioEpsilon
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
