package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/df07/go-montecarlo-raytracer/internal/config"
	"github.com/df07/go-montecarlo-raytracer/internal/logger"
	"github.com/df07/go-montecarlo-raytracer/pkg/imageio"
	"github.com/df07/go-montecarlo-raytracer/pkg/integrator"
	"github.com/df07/go-montecarlo-raytracer/pkg/renderer"
	"github.com/df07/go-montecarlo-raytracer/pkg/scene"
)

// Render renders a single image.
func Render(ctx *cli.Context) error {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyOverrides(overridesFromFlags(ctx))

	if err := setupLogging(ctx, cfg); err != nil {
		return err
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	sc, err := scene.Load(cfg.Render.Scene, cfg.SceneOptions())
	if err != nil {
		return err
	}
	log := logger.Named("render")
	log.Info("scene loaded",
		zap.String("scene", sc.Name),
		zap.Int("spheres", sc.GetPrimitiveCount()))

	rt := renderer.NewRaytracer(sc.Camera, sc.World, cfg.SamplingConfig(),
		renderer.WithLogger(logger.Named("renderer")),
		renderer.WithIntegrator(integrator.NewPathTracingIntegrator(cfg.IntegratorConfig())))

	// Ctrl+C stops the render between tiles
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	img, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}

	if cfg.Output.Path == "-" {
		err = imageio.Write(ctx.App.Writer, img, format)
	} else {
		err = imageio.WriteFile(cfg.Output.Path, img, format)
	}
	if err != nil {
		return err
	}

	logger.Sugar.Infof("render statistics\n%s", stats.Table())
	log.Info("image saved",
		zap.String("path", cfg.Output.Path),
		zap.String("format", string(format)))
	return nil
}

// overridesFromFlags collects the flags that were set explicitly
func overridesFromFlags(ctx *cli.Context) config.Overrides {
	var o config.Overrides
	if ctx.IsSet("scene") {
		o.Scene = stringPtr(ctx.String("scene"))
	}
	if ctx.IsSet("width") {
		o.Width = intPtr(ctx.Int("width"))
	}
	if ctx.IsSet("height") {
		o.Height = intPtr(ctx.Int("height"))
	}
	if ctx.IsSet("spp") {
		o.SamplesPerPixel = intPtr(ctx.Int("spp"))
	}
	if ctx.IsSet("depth") {
		o.MaxDepth = intPtr(ctx.Int("depth"))
	}
	if ctx.IsSet("tile-size") {
		o.TileSize = intPtr(ctx.Int("tile-size"))
	}
	if ctx.IsSet("workers") {
		o.Workers = intPtr(ctx.Int("workers"))
	}
	if ctx.IsSet("seed") {
		seed := ctx.Int64("seed")
		o.Seed = &seed
	}
	if ctx.IsSet("out") {
		o.OutputPath = stringPtr(ctx.String("out"))
	}
	if ctx.IsSet("format") {
		o.OutputFormat = stringPtr(ctx.String("format"))
	}
	return o
}

func stringPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
