package domain

// HasIntegerScale reports whether one resolution is an exact whole-number
// height multiple of the other. Ratios are compared by value, not by mode;
// the test is false when the ratios differ or either is undefined. The
// function is symmetric in its arguments.
func HasIntegerScale(a, b Resolution) bool {
	ratioA, errA := a.AspectRatio()
	ratioB, errB := b.AspectRatio()
	if errA != nil || errB != nil || !ratioA.Equal(ratioB) {
		return false
	}

	small, large := a.height, b.height
	if small > large {
		small, large = large, small
	}
	if small == 0 {
		return false
	}
	return wholeNumber(large / small)
}

// ScaleFactor returns the per-axis factor that scales a to b. When the two
// resolutions share an aspect ratio the factor is isotropic (a splat of the
// height ratio); otherwise each axis is divided independently. Note that only
// the isotropic case inverts cleanly: ScaleFactor(b, a) is exactly the
// reciprocal splat there, with no such guarantee on the anisotropic branch.
func ScaleFactor(a, b Resolution) Vec2 {
	ratioA, errA := a.AspectRatio()
	ratioB, errB := b.AspectRatio()
	if errA == nil && errB == nil && ratioA.Equal(ratioB) {
		return Splat(b.height / a.height)
	}
	return Vec2{X: b.width / a.width, Y: b.height / a.height}
}

// FitsAspectRatio reports whether the given height lands on a whole-pixel
// width under the ratio, i.e. height times the ratio value has no fractional
// component.
func FitsAspectRatio(height float64, ratio AspectRatio) bool {
	return wholeNumber(height * ratio.ratio)
}

// ResolutionFitsAspectRatio reports whether the resolution's height would
// land on a whole-pixel width under the given ratio. The ratio argument is
// independent of the resolution's own ratio; this tests a hypothetical fit,
// not self-consistency.
func ResolutionFitsAspectRatio(r Resolution, ratio AspectRatio) bool {
	return FitsAspectRatio(r.height, ratio)
}
