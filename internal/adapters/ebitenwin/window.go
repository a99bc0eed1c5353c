// Package ebitenwin implements the host windowing boundary using Ebitengine.
package ebitenwin

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.trai.ch/reso/internal/core/domain"
)

// Host implements ports.WindowHost by opening a desktop window.
type Host struct{}

// New creates a new Host.
func New() *Host {
	return &Host{}
}

// WindowSize converts a resolution to the integer window size Ebitengine
// expects. Fractional pixel counts round up so the window never
// under-allocates.
func WindowSize(res domain.Resolution) (width, height int) {
	p := res.Pixels()
	return p.Width, p.Height
}

// Present opens a window sized to the given resolution and blocks until the
// window is closed or the context is cancelled.
func (h *Host) Present(ctx context.Context, res domain.Resolution, title string) error {
	width, height := WindowSize(res)

	if title == "" {
		title = res.String()
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)

	err := ebiten.RunGame(&game{ctx: ctx, width: width, height: height})
	if errors.Is(err, context.Canceled) {
		// Cancellation is the caller asking the window to close.
		return nil
	}
	return err
}

// game is the minimal Ebitengine loop behind Present: it renders a solid
// backdrop at the requested resolution until the window closes.
type game struct {
	ctx    context.Context
	width  int
	height int
}

func (g *game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x0b, G: 0x0f, B: 0x19, A: 0xff})
}

// Layout pins the logical resolution to the requested pixel size regardless
// of the outer window size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
