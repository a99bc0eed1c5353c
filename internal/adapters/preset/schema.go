package preset

// File represents the structure of a reso.yaml preset file.
type File struct {
	Version string      `yaml:"version"`
	Presets []EntryDTO  `yaml:"presets"`
}

// EntryDTO represents a single preset definition. An entry carries a height
// plus either a ratio (fixed-ratio resolution) or an explicit width
// (dynamic-ratio resolution).
type EntryDTO struct {
	Name   string  `yaml:"name"`
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
	Ratio  string  `yaml:"ratio"`
}
