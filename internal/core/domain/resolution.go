package domain

import "math"

// aspectRatioMode tracks how a resolution reports its aspect ratio. A dynamic
// resolution derives the ratio from its current width and height on demand; a
// fixed resolution carries the ratio it was built with, independent of the
// momentary width and height.
type aspectRatioMode struct {
	fixed bool
	ratio AspectRatio
}

// Resolution is a two-dimensional display resolution. It is a value type:
// every mutating operation consumes the receiver and returns a new value.
//
// Constructors are total; a resolution with zero height is representable and
// defers failure to the first AspectRatio call.
type Resolution struct {
	width  float64
	height float64
	mode   aspectRatioMode
}

// New creates a dynamic-ratio resolution. Its aspect ratio is derived on
// demand from the current width and height.
func New(width, height float64) Resolution {
	return Resolution{width: width, height: height}
}

// FromHeight creates a fixed-ratio resolution with the given height; the
// width is derived from the ratio.
func FromHeight(height float64, ratio AspectRatio) Resolution {
	return Resolution{
		width:  height * ratio.ratio,
		height: height,
		mode:   aspectRatioMode{fixed: true, ratio: ratio},
	}
}

// FromWidth creates a fixed-ratio resolution with the given width; the height
// is derived from the ratio.
func FromWidth(width float64, ratio AspectRatio) Resolution {
	return Resolution{
		width:  width,
		height: width / ratio.ratio,
		mode:   aspectRatioMode{fixed: true, ratio: ratio},
	}
}

// R360p creates a 360-line resolution with the given aspect ratio.
func R360p(ratio AspectRatio) Resolution { return FromHeight(360, ratio) }

// R480p creates a 480-line resolution with the given aspect ratio.
func R480p(ratio AspectRatio) Resolution { return FromHeight(480, ratio) }

// R720p creates a 720-line resolution with the given aspect ratio.
func R720p(ratio AspectRatio) Resolution { return FromHeight(720, ratio) }

// R1080p creates a 1080-line resolution with the given aspect ratio.
func R1080p(ratio AspectRatio) Resolution { return FromHeight(1080, ratio) }

// R1440p creates a 1440-line resolution with the given aspect ratio.
func R1440p(ratio AspectRatio) Resolution { return FromHeight(1440, ratio) }

// Width returns the stored width verbatim.
func (r Resolution) Width() float64 {
	return r.width
}

// Height returns the stored height verbatim.
func (r Resolution) Height() float64 {
	return r.height
}

// AspectRatio returns the resolution's aspect ratio. For a fixed-ratio
// resolution this is the stored ratio regardless of the current width and
// height. For a dynamic resolution it is width/height, and
// ErrUndefinedAspectRatio is returned when the height is zero.
func (r Resolution) AspectRatio() (AspectRatio, error) {
	if r.mode.fixed {
		return r.mode.ratio, nil
	}
	if r.height == 0 {
		return AspectRatio{}, ErrUndefinedAspectRatio
	}
	return AspectRatio{ratio: r.width / r.height}, nil
}

// ChangeHeight returns a copy with the given height.
//
// With maintain set, the width is recomputed from the current aspect ratio so
// the ratio binding survives; the recomputation is skipped when the new
// height already matches the existing width under that ratio. Without
// maintain, the width is left untouched and the resolution becomes dynamic,
// so later AspectRatio calls reflect the actual pixel shape rather than a
// stale fixed value.
func (r Resolution) ChangeHeight(height float64, maintain bool) Resolution {
	if maintain {
		if ratio, err := r.AspectRatio(); err == nil {
			if height == 0 || !almostEqual(r.width/height, ratio.ratio) {
				r.width = height * ratio.ratio
			}
		}
	} else {
		r.mode = aspectRatioMode{}
	}
	r.height = height
	return r
}

// ChangeWidth returns a copy with the given width. It is symmetric to
// ChangeHeight: with maintain set, the height is recomputed from the new
// width and the current aspect ratio; without, the height is left untouched
// and the resolution becomes dynamic.
func (r Resolution) ChangeWidth(width float64, maintain bool) Resolution {
	if maintain {
		if ratio, err := r.AspectRatio(); err == nil {
			if r.height == 0 || !almostEqual(width/r.height, ratio.ratio) {
				r.height = width / ratio.ratio
			}
		}
	} else {
		r.mode = aspectRatioMode{}
	}
	r.width = width
	return r
}

// ChangeRatio returns a copy fixed to the given ratio. The height is kept and
// the width is recomputed from it.
func (r Resolution) ChangeRatio(ratio AspectRatio) Resolution {
	r.mode = aspectRatioMode{fixed: true, ratio: ratio}
	r.width = r.height * ratio.ratio
	return r
}

// Scale returns a copy with the width scaled by scalar.X and the height by
// scalar.Y. A dynamic resolution stays dynamic. A fixed resolution keeps its
// ratio binding only while the scaled shape still matches it; otherwise the
// binding no longer describes reality and the result degrades to dynamic.
func (r Resolution) Scale(scalar Vec2) Resolution {
	width := r.width * scalar.X
	height := r.height * scalar.Y

	if r.mode.fixed && !shapeMatches(width, height, r.mode.ratio) {
		r.mode = aspectRatioMode{}
	}
	r.width = width
	r.height = height
	return r
}

// ScaleAndKeepAspectRatio scales like Scale but refuses to change the aspect
// ratio: the second return value is false when the scaled shape would differ
// from the current ratio, and the input is returned unchanged. On success the
// ratio mode carries over as-is. This makes it a strict subset of Scale.
func (r Resolution) ScaleAndKeepAspectRatio(scalar Vec2) (Resolution, bool) {
	ratio, err := r.AspectRatio()
	if err != nil {
		return r, false
	}

	width := r.width * scalar.X
	height := r.height * scalar.Y
	if !shapeMatches(width, height, ratio) {
		return r, false
	}

	r.width = width
	r.height = height
	return r, true
}

// Pixels converts the resolution to an integer pixel pair. Fractional pixel
// counts are rounded up, never down, so non-integer ratio results never
// under-allocate pixels.
func (r Resolution) Pixels() PixelPair {
	return PixelPair{
		Width:  int(math.Ceil(r.width)),
		Height: int(math.Ceil(r.height)),
	}
}

// Size returns the float width/height pair as-is. Host windowing integrations
// build their own window-resolution representation from this or from Pixels.
func (r Resolution) Size() Vec2 {
	return Vec2{X: r.width, Y: r.height}
}

func (r Resolution) String() string {
	return r.Pixels().String()
}

// shapeMatches reports whether a width/height pair has the given aspect
// ratio. A zero height never matches.
func shapeMatches(width, height float64, ratio AspectRatio) bool {
	if height == 0 {
		return false
	}
	return almostEqual(width/height, ratio.ratio)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= ratioEpsilon
}
