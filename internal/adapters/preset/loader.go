// Package preset provides the YAML preset-file loader.
package preset

import (
	"fmt"
	"os"

	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.PresetLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the preset file at path and returns its entries in declaration
// order.
func (l *Loader) Load(path string) ([]domain.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPresetReadFailed.Error())
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPresetParseFailed.Error())
	}

	presets := make([]domain.Preset, 0, len(file.Presets))
	seen := make(map[string]struct{}, len(file.Presets))

	for i, entry := range file.Presets {
		if entry.Name == "" {
			return nil, zerr.With(domain.ErrPresetMissingName, "index", i)
		}
		if _, ok := seen[entry.Name]; ok {
			return nil, zerr.With(domain.ErrDuplicatePresetName, "name", entry.Name)
		}
		seen[entry.Name] = struct{}{}

		res, err := entry.resolution()
		if err != nil {
			return nil, zerr.With(err, "name", entry.Name)
		}
		presets = append(presets, domain.Preset{Name: entry.Name, Resolution: res})
	}

	if l.Logger != nil {
		l.Logger.Info(fmt.Sprintf("loaded %d presets from %s", len(presets), path))
	}

	return presets, nil
}

func (e EntryDTO) resolution() (domain.Resolution, error) {
	if e.Height <= 0 {
		return domain.Resolution{}, zerr.With(domain.ErrInvalidPresetSize, "height", e.Height)
	}

	if e.Ratio != "" {
		ratio, err := domain.ParseAspectRatio(e.Ratio)
		if err != nil {
			return domain.Resolution{}, err
		}
		return domain.FromHeight(e.Height, ratio), nil
	}

	if e.Width <= 0 {
		return domain.Resolution{}, zerr.With(domain.ErrInvalidPresetSize, "width", e.Width)
	}
	return domain.New(e.Width, e.Height), nil
}
