package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/larseberhart/nuccalc/internal/catalog"
	"github.com/larseberhart/nuccalc/internal/effects"
	"github.com/larseberhart/nuccalc/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Calculator is the service surface the HTTP layer needs.
type Calculator interface {
	Calculate(ctx context.Context, req service.Request) (effects.Result, error)
	Weapons() []catalog.Weapon
	Cities() []catalog.City
	CheckReadiness(ctx context.Context) error
}

// Server exposes the calculation API plus health, readiness, and metrics
// endpoints.
type Server struct {
	httpServer *http.Server
	calc       Calculator
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the /v1 API and operational routes.
func NewServer(addr string, calc Calculator, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		calc:   calc,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/effects", s.handleEffects)
	mux.HandleFunc("GET /v1/weapons", s.handleWeapons)
	mux.HandleFunc("GET /v1/cities", s.handleCities)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.calc.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleEffects(w http.ResponseWriter, r *http.Request) {
	var req service.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.calc.Calculate(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleWeapons(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"weapons": s.calc.Weapons()})
}

func (s *Server) handleCities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"cities": s.calc.Cities()})
}

// statusFor maps resolution and engine errors to HTTP status codes. Catalog
// misses are 404s; every other calculation error is a precondition the
// caller can fix, so a 400.
func statusFor(err error) int {
	if errors.Is(err, service.ErrUnknownWeapon) || errors.Is(err, service.ErrUnknownCity) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
