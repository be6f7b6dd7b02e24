// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/buildgate/internal/adapters/config"
	_ "go.trai.ch/buildgate/internal/adapters/i18n"
	_ "go.trai.ch/buildgate/internal/adapters/keystore"
	_ "go.trai.ch/buildgate/internal/adapters/logger"
	_ "go.trai.ch/buildgate/internal/adapters/report"
	// Register app nodes.
	_ "go.trai.ch/buildgate/internal/app"
)
