// Package server exposes the forecast pipeline over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/brianleepetros/weather-ai/internal/forecast"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Forecaster produces a five day forecast for a location.
type Forecaster interface {
	Generate(ctx context.Context, location string) (*forecast.Forecast, error)
}

// Server routes HTTP requests to the forecast pipeline.
type Server struct {
	forecaster Forecaster
	router     chi.Router
}

// NewServer creates a server backed by the given forecaster.
func NewServer(forecaster Forecaster) *Server {
	s := &Server{forecaster: forecaster, router: chi.NewRouter()}
	s.routes()
	return s
}

// Router returns the handler for mounting on an http.Server.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(chimw.Logger)
	s.router.Use(chimw.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/forecast", s.handleForecast)
}
