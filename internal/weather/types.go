package weather

// Report holds the current weather conditions for a city, in the shape
// returned to API callers. All values come straight from the upstream
// payload; temperature and wind speed are metric because the upstream
// request asks for metric units.
type Report struct {
	City               string  `json:"city"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	HumidityPercent    int     `json:"humidity_percent"`
	Description        string  `json:"weather_description"`
	WindSpeedMPS       float64 `json:"wind_speed_mps"`
}
