// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gotobuild/internal/adapters/buildozer"
	_ "go.trai.ch/gotobuild/internal/adapters/config"
	_ "go.trai.ch/gotobuild/internal/adapters/fs"
	_ "go.trai.ch/gotobuild/internal/adapters/logger"
	_ "go.trai.ch/gotobuild/internal/adapters/shell"
	_ "go.trai.ch/gotobuild/internal/adapters/store"
	// Register app and engine nodes.
	_ "go.trai.ch/gotobuild/internal/app"
	_ "go.trai.ch/gotobuild/internal/engine/indexer"
	_ "go.trai.ch/gotobuild/internal/engine/lookup"
)
