package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/df07/go-montecarlo-raytracer/internal/config"
	"github.com/df07/go-montecarlo-raytracer/internal/logger"
	"github.com/df07/go-montecarlo-raytracer/web/server"
)

// Serve runs the HTTP render server until interrupted.
func Serve(ctx *cli.Context) error {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := setupLogging(ctx, cfg); err != nil {
		return err
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	serveCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(ctx.Int("port"), ctx.String("dir"), cfg, logger.Named("server"))
	return srv.Start(serveCtx)
}
