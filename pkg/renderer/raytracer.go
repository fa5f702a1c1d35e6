package renderer

import (
	"context"
	"image"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	TileSize        int   // Edge length of a square tile
	NumWorkers      int   // Worker goroutines, 0 = one per CPU
	Seed            int64 // Base seed for the per-tile random streams
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate checks that the configuration describes a renderable image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "samples per pixel %d", c.SamplesPerPixel)
	}
	if c.TileSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tile size %d", c.TileSize)
	}
	return nil
}

// Raytracer drives the integrator over every pixel of the image
type Raytracer struct {
	camera     core.Camera
	world      core.Shape
	integrator integrator.Integrator
	config     SamplingConfig
	logger     *zap.Logger
}

// Option configures optional Raytracer behavior
type Option func(*Raytracer)

// WithLogger sets the logger used for progress reporting
func WithLogger(logger *zap.Logger) Option {
	return func(rt *Raytracer) {
		rt.logger = logger
	}
}

// WithIntegrator replaces the default path tracing integrator
func WithIntegrator(integratorInst integrator.Integrator) Option {
	return func(rt *Raytracer) {
		rt.integrator = integratorInst
	}
}

// NewRaytracer creates a new raytracer
func NewRaytracer(camera core.Camera, world core.Shape, config SamplingConfig, opts ...Option) *Raytracer {
	rt := &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integrator.NewPathTracingIntegrator(integrator.DefaultConfig()),
		config:     config,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Render renders the full image. Rendering can be aborted between tiles
// through ctx, in which case ErrInterrupted is returned.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if rt.camera == nil {
		return nil, RenderStats{}, ErrNoCamera
	}
	if rt.world == nil {
		return nil, RenderStats{}, ErrNoWorld
	}
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	startTime := time.Now()
	width, height := rt.config.Width, rt.config.Height

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)
	tileRenderer := NewTileRenderer(rt.camera, rt.world, rt.integrator, width, height)
	pool := NewWorkerPool(tileRenderer, rt.config.NumWorkers, len(tiles))

	rt.logger.Info("render started",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("spp", rt.config.SamplesPerPixel),
		zap.Int("tiles", len(tiles)),
		zap.Int("workers", pool.GetNumWorkers()))

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:            tile,
			SamplesPerPixel: rt.config.SamplesPerPixel,
			PixelStats:      pixelStats,
		})
	}

	stats := RenderStats{
		Width:   width,
		Height:  height,
		Workers: pool.GetNumWorkers(),
	}
	var renderErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			renderErr = result.Error
			continue
		}

		stats.TotalPixels += result.Stats.TotalPixels
		stats.TotalSamples += result.Stats.TotalSamples
		stats.Tiles++
		rt.logger.Debug("tile completed",
			zap.Int("tile", result.TileID),
			zap.Int("done", stats.Tiles),
			zap.Int("total", len(tiles)))
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}

	if renderErr != nil {
		rt.logger.Warn("render interrupted",
			zap.Int("tiles_completed", stats.Tiles),
			zap.Int("tiles_total", len(tiles)),
			zap.Error(renderErr))
		return nil, stats, errors.Wrapf(ErrInterrupted, "%d of %d tiles completed", stats.Tiles, len(tiles))
	}

	rt.logger.Info("render completed",
		zap.Duration("duration", stats.Duration),
		zap.Float64("samples_per_second", stats.SamplesPerSecond()))

	return assembleImage(pixelStats), stats, nil
}

// assembleImage converts the accumulated pixel statistics into an 8-bit image
func assembleImage(pixelStats [][]PixelStats) *image.RGBA {
	height := len(pixelStats)
	width := 0
	if height > 0 {
		width = len(pixelStats[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, ToRGBA(pixelStats[y][x].GetColor()))
		}
	}
	return img
}
