package domain

import "go.trai.ch/zerr"

var (
	// ErrUndefinedAspectRatio is returned when a dynamic-mode resolution with
	// zero height is asked for its aspect ratio.
	ErrUndefinedAspectRatio = zerr.New("aspect ratio is undefined for zero height")

	// ErrInvalidAspectRatio is returned when an aspect ratio is constructed
	// from a dimension that is not positive and finite.
	ErrInvalidAspectRatio = zerr.New("aspect ratio dimensions must be positive and finite")

	// ErrInvalidRatioFormat is returned when an aspect ratio string is not in
	// "W:H" or decimal form.
	ErrInvalidRatioFormat = zerr.New("invalid aspect ratio, expected W:H or a positive number")

	// ErrPresetReadFailed is returned when a preset file cannot be read.
	ErrPresetReadFailed = zerr.New("failed to read preset file")

	// ErrPresetParseFailed is returned when a preset file cannot be parsed.
	ErrPresetParseFailed = zerr.New("failed to parse preset file")

	// ErrPresetMissingName is returned when a preset entry has no name.
	ErrPresetMissingName = zerr.New("preset entry is missing a name")

	// ErrDuplicatePresetName is returned when two preset entries share a name.
	ErrDuplicatePresetName = zerr.New("duplicate preset name")

	// ErrInvalidPresetSize is returned when a preset entry has a non-positive
	// width or height.
	ErrInvalidPresetSize = zerr.New("preset dimensions must be positive")

	// ErrUnknownResolution is returned when a resolution spec does not match a
	// named height or a WxH pair.
	ErrUnknownResolution = zerr.New("unknown resolution, expected <height>p, <height>p@<ratio> or WxH")

	// ErrInvalidScalar is returned when a scale factor spec cannot be parsed.
	ErrInvalidScalar = zerr.New("invalid scale factor, expected N or XxY")
)
