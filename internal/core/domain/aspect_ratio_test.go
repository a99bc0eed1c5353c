package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/core/domain"
)

func TestNewAspectRatio(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		height  float64
		want    float64
		wantErr bool
	}{
		{name: "16:9", width: 16, height: 9, want: 16.0 / 9.0},
		{name: "4:3", width: 4, height: 3, want: 4.0 / 3.0},
		{name: "from pixel pair", width: 1920, height: 1080, want: 16.0 / 9.0},
		{name: "zero width", width: 0, height: 9, wantErr: true},
		{name: "zero height", width: 16, height: 0, wantErr: true},
		{name: "negative width", width: -16, height: 9, wantErr: true},
		{name: "negative height", width: 16, height: -9, wantErr: true},
		{name: "infinite width", width: math.Inf(1), height: 9, wantErr: true},
		{name: "nan height", width: 16, height: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio, err := domain.NewAspectRatio(tt.width, tt.height)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidAspectRatio)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, ratio.Value(), 1e-12)
		})
	}
}

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.AspectRatio
		wantErr error
	}{
		{name: "colon form", input: "16:9", want: domain.SixteenNine},
		{name: "colon form 4:3", input: "4:3", want: domain.FourThree},
		{name: "colon form ultrawide", input: "21:9", want: domain.Ultrawide},
		{name: "decimal form", input: "1", want: domain.Square},
		{name: "spaced", input: " 16:9 ", want: domain.SixteenNine},
		{name: "empty", input: "", wantErr: domain.ErrInvalidRatioFormat},
		{name: "garbage", input: "wide", wantErr: domain.ErrInvalidRatioFormat},
		{name: "half colon", input: "16:", wantErr: domain.ErrInvalidRatioFormat},
		{name: "zero height", input: "16:0", wantErr: domain.ErrInvalidAspectRatio},
		{name: "negative", input: "-1.5", wantErr: domain.ErrInvalidAspectRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio, err := domain.ParseAspectRatio(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, ratio.Equal(tt.want), "parsed %v, want %v", ratio, tt.want)
		})
	}
}

func TestAspectRatio_Equal(t *testing.T) {
	fromPixels, err := domain.NewAspectRatio(1280, 720)
	require.NoError(t, err)

	// Equality is tolerant of float drift well below a meaningful ratio
	// difference.
	assert.True(t, fromPixels.Equal(domain.SixteenNine))
	assert.True(t, domain.SixteenNine.Equal(fromPixels))
	assert.False(t, domain.SixteenNine.Equal(domain.FourThree))

	nearly, err := domain.NewAspectRatio(16.000001, 9)
	require.NoError(t, err)
	assert.False(t, nearly.Equal(domain.SixteenNine))
}

func TestAspectRatio_String(t *testing.T) {
	tests := []struct {
		ratio domain.AspectRatio
		want  string
	}{
		{ratio: domain.SixteenNine, want: "16:9"},
		{ratio: domain.FourThree, want: "4:3"},
		{ratio: domain.Ultrawide, want: "21:9"},
		{ratio: domain.Square, want: "1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ratio.String())
		})
	}

	custom, err := domain.NewAspectRatio(5, 2)
	require.NoError(t, err)
	assert.Equal(t, "2.5", custom.String())
}
