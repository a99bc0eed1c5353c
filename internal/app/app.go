// Package app implements the application layer for reso.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	logger  ports.Logger
	presets ports.PresetLoader
	window  ports.WindowHost
}

// New creates a new App instance.
func New(logger ports.Logger, presets ports.PresetLoader, window ports.WindowHost) *App {
	return &App{
		logger:  logger,
		presets: presets,
		window:  window,
	}
}

// ListOptions configuration for the List method.
type ListOptions struct {
	// PresetPath is an optional preset file whose entries are appended to the
	// common tables.
	PresetPath string
}

// List writes the common resolution tables, plus the entries of an optional
// preset file, to w.
func (a *App) List(w io.Writer, opts ListOptions) error {
	writeTable(w, "16:9", domain.Common16x9())
	fmt.Fprintln(w)
	writeTable(w, "4:3", domain.Common4x3())

	if opts.PresetPath == "" {
		return nil
	}

	presets, err := a.presets.Load(opts.PresetPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load presets")
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "presets (%s)\n", opts.PresetPath)
	for _, p := range presets {
		fmt.Fprintf(w, "  %-8s %-12s %s\n", p.Name, p.Resolution, ratioLabel(p.Resolution))
	}
	return nil
}

func writeTable(w io.Writer, header string, resolutions []domain.Resolution) {
	fmt.Fprintln(w, header)
	for _, r := range resolutions {
		fmt.Fprintf(w, "  %-8s %s\n", fmt.Sprintf("%gp", r.Height()), r)
	}
}

func ratioLabel(r domain.Resolution) string {
	ratio, err := r.AspectRatio()
	if err != nil {
		return "-"
	}
	return ratio.String()
}

// FitOptions configuration for the Fit method.
type FitOptions struct {
	Height float64
	Ratio  string
}

// Fit reports whether the given height lands on a whole-pixel width under
// the given ratio.
func (a *App) Fit(w io.Writer, opts FitOptions) error {
	ratio, err := domain.ParseAspectRatio(opts.Ratio)
	if err != nil {
		return err
	}

	width := opts.Height * ratio.Value()
	if domain.FitsAspectRatio(opts.Height, ratio) {
		fmt.Fprintf(w, "%s height %g fits %s (width %g px)\n", style.Check, opts.Height, ratio, width)
	} else {
		fmt.Fprintf(w, "%s height %g does not fit %s (width %g px)\n", style.Cross, opts.Height, ratio, width)
	}
	return nil
}

// ScaleOptions configuration for the Scale method. Exactly one of To and By
// must be set.
type ScaleOptions struct {
	From string
	To   string
	By   string
	Keep bool
}

// Scale either reports the factor between two resolutions (To) or applies a
// scale factor to one (By). With Keep set, a factor that would change the
// aspect ratio is refused and reported as such.
func (a *App) Scale(w io.Writer, opts ScaleOptions) error {
	from, err := domain.ParseResolution(opts.From)
	if err != nil {
		return err
	}

	if opts.To != "" {
		to, err := domain.ParseResolution(opts.To)
		if err != nil {
			return err
		}

		factor := domain.ScaleFactor(from, to)
		fmt.Fprintf(w, "from:          %s (%s)\n", from, ratioLabel(from))
		fmt.Fprintf(w, "to:            %s (%s)\n", to, ratioLabel(to))
		fmt.Fprintf(w, "scale factor:  %s\n", factor)
		if domain.HasIntegerScale(from, to) {
			fmt.Fprintf(w, "integer scale: %s yes\n", style.Check)
		} else {
			fmt.Fprintf(w, "integer scale: %s no\n", style.Cross)
		}
		return nil
	}

	factor, err := domain.ParseScalar(opts.By)
	if err != nil {
		return err
	}

	if opts.Keep {
		scaled, ok := from.ScaleAndKeepAspectRatio(factor)
		if !ok {
			// Expected outcome, not a failure: the requested scale would
			// distort the shape.
			fmt.Fprintf(w, "%s scaling %s by %s would change its aspect ratio\n", style.Cross, from, factor)
			return nil
		}
		fmt.Fprintf(w, "%s -> %s (%s)\n", from, scaled, ratioLabel(scaled))
		return nil
	}

	scaled := from.Scale(factor)
	fmt.Fprintf(w, "%s -> %s (%s)\n", from, scaled, ratioLabel(scaled))
	return nil
}

// ResizeOptions configuration for the Resize method. Exactly one of Height,
// Width and Ratio must be set.
type ResizeOptions struct {
	Base   string
	Height float64
	Width  float64
	Ratio  string
	Keep   bool
}

// Resize applies a single mutation to a base resolution and reports the
// result. Keep controls whether height/width changes maintain the current
// aspect ratio.
func (a *App) Resize(w io.Writer, opts ResizeOptions) error {
	base, err := domain.ParseResolution(opts.Base)
	if err != nil {
		return err
	}

	var result domain.Resolution
	switch {
	case opts.Ratio != "":
		ratio, err := domain.ParseAspectRatio(opts.Ratio)
		if err != nil {
			return err
		}
		result = base.ChangeRatio(ratio)
	case opts.Height > 0:
		result = base.ChangeHeight(opts.Height, opts.Keep)
	case opts.Width > 0:
		result = base.ChangeWidth(opts.Width, opts.Keep)
	default:
		return ErrNoResizeTarget
	}

	fmt.Fprintf(w, "%s (%s) -> %s (%s)\n", base, ratioLabel(base), result, ratioLabel(result))
	return nil
}

// WindowOptions configuration for the Window method.
type WindowOptions struct {
	Spec  string
	Title string
}

// Window opens a host window at the given resolution and blocks until it is
// closed.
func (a *App) Window(ctx context.Context, opts WindowOptions) error {
	res, err := domain.ParseResolution(opts.Spec)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("opening %s window", res))
	if err := a.window.Present(ctx, res, opts.Title); err != nil {
		return zerr.Wrap(err, "window host failed")
	}
	return nil
}

// ErrNoResizeTarget is returned when Resize is called without a height,
// width or ratio to apply.
var ErrNoResizeTarget = zerr.New("nothing to resize, set a height, width or ratio")
