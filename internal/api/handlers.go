package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/weather-info-api/internal/weather"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	fetcher WeatherFetcher
	log     *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(fetcher WeatherFetcher, log *slog.Logger) *Handlers {
	return &Handlers{
		fetcher: fetcher,
		log:     log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// GetWeather handles GET /weather/{city}.
// Error mapping: missing API key → 500, unknown city → 404,
// any other upstream failure → 502, everything else → 500.
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	report, err := h.fetcher.Fetch(r.Context(), city)
	if err != nil {
		var notFound *weather.NotFoundError
		switch {
		case errors.Is(err, weather.ErrMissingAPIKey):
			h.log.Error("weather request rejected: API key not configured", "city", city)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "OpenWeatherMap API key is missing. Please set it in your environment variables.",
			})
		case errors.As(err, &notFound):
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("City '%s' not found.", notFound.City),
			})
		case errors.Is(err, weather.ErrUpstream):
			h.log.Error("upstream weather fetch failed", "city", city, "err", err)
			writeJSON(w, http.StatusBadGateway, map[string]string{
				"error": "Something went wrong while fetching weather data.",
			})
		default:
			h.log.Error("weather fetch failed", "city", city, "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Welcome handles GET / with a static welcome message.
func (h *Handlers) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Weather Info API! Visit /weather/{city_name} to get live weather updates.",
	})
}

// Health handles GET /health. The service holds no connections to ping,
// so this is a liveness check only.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
