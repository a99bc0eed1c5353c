package domain

// Preset is a named resolution loaded from a preset file.
type Preset struct {
	Name       string
	Resolution Resolution
}
