package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/df07/go-montecarlo-raytracer/pkg/imageio"
	"github.com/df07/go-montecarlo-raytracer/pkg/integrator"
	"github.com/df07/go-montecarlo-raytracer/pkg/renderer"
	"github.com/df07/go-montecarlo-raytracer/pkg/scene"
)

// handleRender renders the requested scene and responds with a PNG.
// The render stops when the client disconnects.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sc, err := s.loadScene(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	log := s.logger.With(zap.String("scene", sc.Name), zap.String("remote", r.RemoteAddr))

	sampling := renderer.SamplingConfig{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.SamplesPerPixel,
		TileSize:        s.defaults.Render.TileSize,
		NumWorkers:      s.defaults.Render.Workers,
		Seed:            req.Seed,
	}
	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = req.MaxDepth

	rt := renderer.NewRaytracer(sc.Camera, sc.World, sampling,
		renderer.WithLogger(log),
		renderer.WithIntegrator(integrator.NewPathTracingIntegrator(integratorConfig)))

	img, stats, err := rt.Render(r.Context())
	if err != nil {
		if errors.Is(err, renderer.ErrInterrupted) {
			log.Info("render abandoned by client", zap.Int("tiles_completed", stats.Tiles))
		}
		writeError(w, statusFor(err), err)
		return
	}

	// Encode fully before writing so encoding errors can still change the status
	var buf bytes.Buffer
	if err := imageio.WritePNG(&buf, img); err != nil {
		log.Error("encoding render", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Samples-Per-Second", fmt.Sprintf("%.0f", stats.SamplesPerSecond()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// statusFor maps render errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene):
		return http.StatusNotFound
	case errors.Is(err, renderer.ErrInterrupted):
		return http.StatusServiceUnavailable
	case errors.Is(err, renderer.ErrInvalidConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
