package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-montecarlo-raytracer/internal/config"
	"github.com/df07/go-montecarlo-raytracer/internal/logger"
)

// loggingOverrides collects the global -v and --log-file flags
func loggingOverrides(ctx *cli.Context) config.Overrides {
	var o config.Overrides
	if ctx.GlobalBool("v") {
		o.LogLevel = stringPtr("debug")
	}
	if ctx.GlobalIsSet("log-file") {
		o.LogFile = stringPtr(ctx.GlobalString("log-file"))
	}
	return o
}

// setupLogging applies the global logging flags over the logging section of
// the config and initializes the global logger.
func setupLogging(ctx *cli.Context, cfg *config.Config) error {
	cfg.ApplyOverrides(loggingOverrides(ctx))
	return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
}
