package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/core/domain"
)

func TestCommon16x9(t *testing.T) {
	common := domain.Common16x9()
	require.Len(t, common, 4)

	want := []domain.PixelPair{
		{Width: 640, Height: 360},
		{Width: 1280, Height: 720},
		{Width: 1920, Height: 1080},
		{Width: 2560, Height: 1440},
	}

	for i, r := range common {
		assert.Equal(t, want[i], r.Pixels())

		ratio, err := r.AspectRatio()
		require.NoError(t, err)
		assert.Equal(t, domain.SixteenNine, ratio)
	}
}

func TestCommon4x3(t *testing.T) {
	common := domain.Common4x3()
	require.Len(t, common, 4)

	want := []domain.PixelPair{
		{Width: 480, Height: 360},
		{Width: 640, Height: 480},
		{Width: 960, Height: 720},
		{Width: 1920, Height: 1440},
	}

	for i, r := range common {
		assert.Equal(t, want[i], r.Pixels())

		ratio, err := r.AspectRatio()
		require.NoError(t, err)
		assert.Equal(t, domain.FourThree, ratio)
	}

	// 1080p is deliberately absent from the 4:3 set.
	for _, r := range common {
		assert.NotEqual(t, 1080.0, r.Height())
	}
}
