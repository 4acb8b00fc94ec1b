// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/gunchamalik/wheelhouse/internal/adapters/config"
	_ "github.com/gunchamalik/wheelhouse/internal/adapters/git"
	_ "github.com/gunchamalik/wheelhouse/internal/adapters/logger"
	_ "github.com/gunchamalik/wheelhouse/internal/adapters/pip"
	_ "github.com/gunchamalik/wheelhouse/internal/adapters/shell"
	_ "github.com/gunchamalik/wheelhouse/internal/adapters/telemetry"
	_ "github.com/gunchamalik/wheelhouse/internal/adapters/wheelcache"
	// Register app nodes.
	_ "github.com/gunchamalik/wheelhouse/internal/app"
)
