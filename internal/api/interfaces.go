package api

import (
	"context"

	"github.com/neexbeast/weather-info-api/internal/weather"
)

// WeatherFetcher defines the upstream lookup needed by handlers.
type WeatherFetcher interface {
	Fetch(ctx context.Context, city string) (*weather.Report, error)
}
