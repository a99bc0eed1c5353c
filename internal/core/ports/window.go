package ports

import (
	"context"

	"go.trai.ch/reso/internal/core/domain"
)

// WindowHost is the boundary to a host windowing system. Implementations
// derive their window-resolution representation from domain.Resolution's
// Pixels or Size conversions, keeping the core decoupled from any specific
// windowing API.
//
//go:generate mockgen -source=window.go -destination=mocks/mock_window.go -package=mocks
type WindowHost interface {
	// Present opens a window sized to the given resolution and blocks until
	// the window is closed or the context is cancelled.
	Present(ctx context.Context, res domain.Resolution, title string) error
}
