package weather

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey means no OpenWeatherMap API key is configured. The client
// returns it before issuing any outbound request.
var ErrMissingAPIKey = errors.New("openweathermap API key is not set")

// ErrUpstream marks any upstream failure that is not a city-not-found:
// unexpected status codes, undecodable bodies, payloads missing the
// weather conditions array. Callers should surface it as a gateway error
// without forwarding upstream details.
var ErrUpstream = errors.New("upstream weather service failed")

// NotFoundError means the upstream does not know the requested city.
type NotFoundError struct {
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("city %q not found", e.City)
}
