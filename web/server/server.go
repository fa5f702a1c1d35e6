package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/df07/go-montecarlo-raytracer/internal/config"
	"github.com/df07/go-montecarlo-raytracer/pkg/scene"
)

// maxPixels bounds the image size a single request may ask for
const maxPixels = 2000 * 2000

// Server serves renders and scene metadata over HTTP
type Server struct {
	port     int
	sceneDir string
	defaults config.Config
	logger   *zap.Logger
}

// NewServer creates a new web server. Request parameters that are not given
// fall back to the render section of defaults.
func NewServer(port int, sceneDir string, defaults *config.Config, logger *zap.Logger) *Server {
	if defaults == nil {
		defaults = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		port:     port,
		sceneDir: sceneDir,
		defaults: *defaults,
		logger:   logger,
	}
}

// RenderRequest represents the parameters of a render or inspect request
type RenderRequest struct {
	Scene           string `json:"scene"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	SamplesPerPixel int    `json:"spp"`
	MaxDepth        int    `json:"depth"`
	Seed            int64  `json:"seed"`
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start serves until ctx is canceled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	s.logger.Info("starting web server", zap.String("addr", "http://localhost"+srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "web server")
	}
	return nil
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		s.logger.Error("listing scenes", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// parseRenderRequest reads query parameters over the configured defaults
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	d := s.defaults.Render

	req := &RenderRequest{Scene: d.Scene}
	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", d.Width, 1, 4000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", d.Height, 1, 4000); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(query, "spp", d.SamplesPerPixel, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", d.MaxDepth, 1, 1000); err != nil {
		return nil, err
	}
	req.Seed = d.Seed
	if value := query.Get("seed"); value != "" {
		if req.Seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, errors.Errorf("invalid seed: %s", value)
		}
	}

	if req.Width*req.Height > maxPixels {
		return nil, errors.Errorf("image of %dx%d exceeds %d pixels", req.Width, req.Height, maxPixels)
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	value := values.Get(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Errorf("invalid %s: %s", key, value)
	}
	if parsed < min || parsed > max {
		return 0, errors.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
	}
	return parsed, nil
}

// loadScene builds a listed scene. Only built-ins and files found in the
// scene directory are accepted, never arbitrary paths.
func (s *Server) loadScene(req *RenderRequest) (*scene.Scene, error) {
	scenes, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		return nil, err
	}
	for _, info := range scenes {
		if info.ID == req.Scene {
			return scene.Load(info.ID, scene.Options{Width: req.Width, Height: req.Height, Seed: req.Seed})
		}
	}
	return nil, errors.Wrapf(scene.ErrUnknownScene, "%q", req.Scene)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
