package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ParseResolution parses a resolution spec. It accepts named heights with an
// optional ratio ("720p", "720p@4:3", defaulting to 16:9) and explicit pixel
// pairs ("1280x720", dynamic ratio).
func ParseResolution(s string) (Resolution, error) {
	s = strings.TrimSpace(s)

	if w, h, ok := strings.Cut(s, "x"); ok {
		width, errW := strconv.ParseFloat(w, 64)
		height, errH := strconv.ParseFloat(h, 64)
		if errW != nil || errH != nil || width <= 0 || height <= 0 {
			return Resolution{}, zerr.With(ErrUnknownResolution, "input", s)
		}
		return New(width, height), nil
	}

	name, ratioSpec, hasRatio := strings.Cut(s, "@")
	name, ok := strings.CutSuffix(name, "p")
	if !ok {
		return Resolution{}, zerr.With(ErrUnknownResolution, "input", s)
	}

	height, err := strconv.ParseFloat(name, 64)
	if err != nil || height <= 0 {
		return Resolution{}, zerr.With(ErrUnknownResolution, "input", s)
	}

	ratio := SixteenNine
	if hasRatio {
		ratio, err = ParseAspectRatio(ratioSpec)
		if err != nil {
			return Resolution{}, err
		}
	}
	return FromHeight(height, ratio), nil
}

// ParseScalar parses a scale factor spec: a single positive number applies to
// both axes ("2"), an XxY pair scales each axis independently ("2x1").
func ParseScalar(s string) (Vec2, error) {
	s = strings.TrimSpace(s)

	if xs, ys, ok := strings.Cut(s, "x"); ok {
		x, errX := strconv.ParseFloat(xs, 64)
		y, errY := strconv.ParseFloat(ys, 64)
		if errX != nil || errY != nil || !positiveFinite(x) || !positiveFinite(y) {
			return Vec2{}, zerr.With(ErrInvalidScalar, "input", s)
		}
		return NewVec2(x, y), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !positiveFinite(v) {
		return Vec2{}, zerr.With(ErrInvalidScalar, "input", s)
	}
	return Splat(v), nil
}
