// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reso/internal/adapters/ebitenwin"
	_ "go.trai.ch/reso/internal/adapters/logger"
	_ "go.trai.ch/reso/internal/adapters/preset"
	// Register app nodes.
	_ "go.trai.ch/reso/internal/app"
)
