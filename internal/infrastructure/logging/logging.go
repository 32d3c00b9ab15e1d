// Package logging configures the process-wide zap logger. Load and write
// failures in the view layer are logged here rather than surfaced to clients,
// so the logger is the only place those outcomes are visible.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds the global logger and installs it via zap.ReplaceGlobals.
// mode "production" selects JSON output; anything else is the console
// development encoder.
func Setup(mode string) {
	var cfg zap.Config
	if mode == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stdout"}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
