package models

type WeatherKind string

const (
	KindSun   WeatherKind = "sun"
	KindCloud WeatherKind = "cloud"
	KindRain  WeatherKind = "rain"
	KindStorm WeatherKind = "storm"
	KindSnow  WeatherKind = "snow"
)

type WeatherState struct {
	Kind        WeatherKind `json:"kind"`
	TempC       int         `json:"tempC"`
	Description string      `json:"description"`
}

// ClassifyWeatherCode maps a WMO weather code to a display kind. The mapping
// is total: unknown codes classify as cloud.
func ClassifyWeatherCode(code int) WeatherKind {
	switch {
	case code == 0:
		return KindSun
	case code == 1 || code == 2 || code == 3 || code == 45 || code == 48:
		return KindCloud
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return KindRain
	case (code >= 71 && code <= 77) || (code >= 85 && code <= 86):
		return KindSnow
	case code == 95 || code == 96 || code == 99:
		return KindStorm
	default:
		return KindCloud
	}
}

// DescribeWeatherCode maps a WMO weather code to its human description.
func DescribeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Clear skies"
	case code == 1 || code == 2 || code == 3:
		return "Partly cloudy"
	case code == 45 || code == 48:
		return "Fog"
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return "Rain"
	case (code >= 71 && code <= 77) || (code >= 85 && code <= 86):
		return "Snow"
	case code == 95 || code == 96 || code == 99:
		return "Thunderstorms"
	default:
		return "Unknown conditions"
	}
}
