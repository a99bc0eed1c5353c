package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/preset"
	"go.trai.ch/reso/internal/core/domain"
)

func writePresetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reso.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writePresetFile(t, `
version: "1"
presets:
  - name: hd
    height: 720
    ratio: "16:9"
  - name: classic
    height: 480
    ratio: "4:3"
  - name: banner
    width: 1280
    height: 240
`)

	loader := preset.NewLoader(nil)
	presets, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, presets, 3)

	assert.Equal(t, "hd", presets[0].Name)
	assert.Equal(t, domain.R720p(domain.SixteenNine), presets[0].Resolution)

	assert.Equal(t, "classic", presets[1].Name)
	assert.Equal(t, domain.R480p(domain.FourThree), presets[1].Resolution)

	// Width+height entries are dynamic: the ratio reflects the pixel shape.
	assert.Equal(t, "banner", presets[2].Name)
	assert.Equal(t, domain.New(1280, 240), presets[2].Resolution)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "missing name",
			content: `
presets:
  - height: 720
    ratio: "16:9"
`,
			wantErr: domain.ErrPresetMissingName,
		},
		{
			name: "duplicate name",
			content: `
presets:
  - name: hd
    height: 720
    ratio: "16:9"
  - name: hd
    height: 1080
    ratio: "16:9"
`,
			wantErr: domain.ErrDuplicatePresetName,
		},
		{
			name: "non-positive height",
			content: `
presets:
  - name: bad
    height: 0
    ratio: "16:9"
`,
			wantErr: domain.ErrInvalidPresetSize,
		},
		{
			name: "missing width and ratio",
			content: `
presets:
  - name: bad
    height: 720
`,
			wantErr: domain.ErrInvalidPresetSize,
		},
		{
			name: "bad ratio",
			content: `
presets:
  - name: bad
    height: 720
    ratio: "wide"
`,
			wantErr: domain.ErrInvalidRatioFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := preset.NewLoader(nil)
			_, err := loader.Load(writePresetFile(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := preset.NewLoader(nil)
	_, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoader_Load_Malformed(t *testing.T) {
	loader := preset.NewLoader(nil)
	_, err := loader.Load(writePresetFile(t, "presets: [not: valid"))
	require.Error(t, err)
}
