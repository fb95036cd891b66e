// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/bpmlabs/igniter/internal/adapters/archive"
	_ "github.com/bpmlabs/igniter/internal/adapters/config"
	_ "github.com/bpmlabs/igniter/internal/adapters/logger"
	_ "github.com/bpmlabs/igniter/internal/adapters/telemetry"
	_ "github.com/bpmlabs/igniter/internal/adapters/templates"
	_ "github.com/bpmlabs/igniter/internal/adapters/versions"
	// Register app and engine nodes.
	_ "github.com/bpmlabs/igniter/internal/app"
	_ "github.com/bpmlabs/igniter/internal/engine/generator"
)
