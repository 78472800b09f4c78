package config

import "os"

// Config holds the environment-driven settings for the service.
type Config struct {
	Port string

	// OpenWeatherAPIKey may be empty: the process still starts, and every
	// weather request then fails with a configuration error until it is set.
	OpenWeatherAPIKey string
	OpenWeatherURL    string
}

const owmDefaultURL = "https://api.openweathermap.org/data/2.5/weather"

// FromEnv reads configuration from the environment, applying defaults.
func FromEnv() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherURL:    getEnv("OPENWEATHER_URL", owmDefaultURL),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
