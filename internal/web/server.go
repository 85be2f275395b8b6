// Package web is the browser front end for the report pipeline: a small
// form for the two paths, a JSON generate endpoint and a metrics endpoint.
// It supplies input/output paths and displays success or failure; the
// pipeline itself lives in internal/report.
package web

import (
	_ "embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"schedgen/internal/config"
	apierrors "schedgen/internal/errors"
	"schedgen/internal/report"
)

//go:embed index.html
var indexPage []byte

var validate = validator.New()

// Server wires the report service into an HTTP surface.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	service *report.Service
	metrics *Metrics
}

// NewServer creates the web shell around the given configuration.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:     cfg,
		logger:  logger,
		service: report.NewService(logger),
		metrics: NewMetrics(),
	}
}

// Router builds the chi router with the full middleware chain.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(StructuredLogger(s.logger))
	r.Use(Recoverer(s.logger))
	if s.cfg.Security.RateLimit.Enabled {
		limiter := NewRateLimiter(s.cfg.Security.RateLimit.RPS, s.cfg.Security.RateLimit.Burst, s.logger)
		r.Use(limiter.Handler)
	}

	r.Get("/", s.handleIndex)
	r.Post("/api/generate", s.handleGenerate)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return r
}

// generateRequest is the JSON body of POST /api/generate. Font fields are
// optional; missing values fall back to the configured defaults.
type generateRequest struct {
	InputPath        string  `json:"input_path" validate:"required"`
	OutputDir        string  `json:"output_dir" validate:"required"`
	FontName         string  `json:"font_name"`
	ProviderFontSize float64 `json:"provider_font_size"`
	TextSize         float64 `json:"text_size"`
}

// generateResponse is the success envelope of POST /api/generate.
type generateResponse struct {
	Success    bool   `json:"success"`
	OutputPath string `json:"output_path"`
}

// Render implements the render.Renderer interface.
func (generateResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req generateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.InvalidRequestWithError(err)))
		return
	}
	if err := validate.Struct(req); err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(
			apierrors.NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED",
				"Request validation failed", err.Error())))
		return
	}

	fonts := s.fontConfig(req)

	start := time.Now()
	path, err := s.service.GenerateReport(ctx, req.InputPath, req.OutputDir, fonts)
	if err != nil {
		apiErr := apierrors.FromReportError(err)
		s.metrics.ObserveFailure(apiErr.ErrorCode, time.Since(start))
		s.logger.ErrorContext(ctx, "report generation failed",
			slog.String("input_path", req.InputPath),
			slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apiErr))
		return
	}
	s.metrics.ObserveSuccess(time.Since(start))

	render.Render(w, r, generateResponse{Success: true, OutputPath: path})
}

// fontConfig merges request overrides over the configured defaults.
func (s *Server) fontConfig(req generateRequest) report.FontConfig {
	fonts := s.cfg.Report.FontConfig()
	if req.FontName != "" {
		fonts.FontName = req.FontName
	}
	if req.ProviderFontSize > 0 {
		fonts.ProviderFontSize = req.ProviderFontSize
	}
	if req.TextSize > 0 {
		fonts.TextSize = req.TextSize
	}
	return fonts
}
