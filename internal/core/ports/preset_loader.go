package ports

import "go.trai.ch/reso/internal/core/domain"

// PresetLoader loads named resolution presets from a configuration source.
//
//go:generate mockgen -source=preset_loader.go -destination=mocks/mock_preset_loader.go -package=mocks
type PresetLoader interface {
	// Load reads the preset file at the given path and returns its entries in
	// declaration order.
	Load(path string) ([]domain.Preset, error)
}
