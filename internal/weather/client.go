package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const httpTimeout = 10 * time.Second

const owmDefaultURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current weather from OpenWeatherMap.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client with the given API key. The key may be
// empty; Fetch then fails with ErrMissingAPIKey without calling upstream.
func NewClient(apiKey string) *Client {
	return NewClientWithURL(owmDefaultURL, apiKey)
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

type owmResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Fetch retrieves current weather for the given city. The city is passed
// through as the q query parameter without local validation.
func (c *Client) Fetch(ctx context.Context, city string) (*Report, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint := c.baseURL + "?q=" + url.QueryEscape(city) + "&appid=" + c.apiKey + "&units=metric"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", city, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweathermap fetch for %s: %w", city, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &NotFoundError{City: city}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("openweathermap returned status %d: %w", resp.StatusCode, ErrUpstream)
	}

	var raw owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding openweathermap response for %s: %w", city, ErrUpstream)
	}
	if len(raw.Weather) == 0 {
		return nil, fmt.Errorf("openweathermap response for %s has no weather conditions: %w", city, ErrUpstream)
	}

	return &Report{
		City:               raw.Name,
		TemperatureCelsius: raw.Main.Temp,
		HumidityPercent:    raw.Main.Humidity,
		Description:        capitalize(raw.Weather[0].Description),
		WindSpeedMPS:       raw.Wind.Speed,
	}, nil
}

// capitalize upper-cases the first rune and lower-cases the rest,
// matching how upstream descriptions are presented ("light rain" → "Light rain").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
