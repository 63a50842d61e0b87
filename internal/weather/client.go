// Package weather wraps the Open-Meteo forecast API, reading only the
// handful of fields the dashboard consumes.
package weather

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"lifedash/internal/models"
	"lifedash/internal/structures"
)

// HourEntry is one slot of the next-hours strip. Pop is the precipitation
// probability in percent, nil when the provider omits it.
type HourEntry struct {
	Time        string             `json:"time"`
	TempC       int                `json:"tempC"`
	Code        int                `json:"code"`
	Kind        models.WeatherKind `json:"kind"`
	Pop         *int               `json:"pop"`
	Description string             `json:"description"`
}

type ClientInterface interface {
	Current(ctx context.Context, lat, lon float64) (models.WeatherState, error)
	Hourly(ctx context.Context, lat, lon float64, now time.Time) ([]HourEntry, error)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(conf *structures.Config) ClientInterface {
	return &Client{
		baseURL: conf.Weather.BaseURL,
		http:    &http.Client{Timeout: conf.Weather.Timeout * time.Second},
	}
}

type currentResponse struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

type hourlyResponse struct {
	Hourly struct {
		Time         []string  `json:"time"`
		Temperature  []float64 `json:"temperature_2m"`
		PrecipProb   []*int    `json:"precipitation_probability"`
		WeatherCodes []int     `json:"weathercode"`
	} `json:"hourly"`
}

func (c *Client) Current(ctx context.Context, lat, lon float64) (models.WeatherState, error) {
	var resp currentResponse
	query := url.Values{}
	query.Set("latitude", formatCoord(lat))
	query.Set("longitude", formatCoord(lon))
	query.Set("current_weather", "true")
	if err := c.get(ctx, query, &resp); err != nil {
		return models.WeatherState{}, err
	}
	if resp.CurrentWeather == nil {
		return models.WeatherState{}, fmt.Errorf("no current_weather in response")
	}

	code := resp.CurrentWeather.WeatherCode
	return models.WeatherState{
		Kind:        models.ClassifyWeatherCode(code),
		TempC:       int(math.Round(resp.CurrentWeather.Temperature)),
		Description: models.DescribeWeatherCode(code),
	}, nil
}

// Hourly returns up to 8 slots starting at the first one not already past.
func (c *Client) Hourly(ctx context.Context, lat, lon float64, now time.Time) ([]HourEntry, error) {
	var resp hourlyResponse
	query := url.Values{}
	query.Set("latitude", formatCoord(lat))
	query.Set("longitude", formatCoord(lon))
	query.Set("hourly", "temperature_2m,precipitation_probability,weathercode")
	query.Set("forecast_days", "2")
	query.Set("timezone", "auto")
	if err := c.get(ctx, query, &resp); err != nil {
		return nil, err
	}

	times := resp.Hourly.Time
	if len(times) == 0 {
		return nil, fmt.Errorf("no hourly data in response")
	}

	idx := 0
	for i, s := range times {
		t, err := time.ParseInLocation("2006-01-02T15:04", s, now.Location())
		if err != nil {
			continue
		}
		if !t.Before(now) {
			idx = i
			break
		}
	}

	end := min(len(times), idx+8)
	out := make([]HourEntry, 0, end-idx)
	for i := idx; i < end; i++ {
		entry := HourEntry{Time: times[i]}
		if i < len(resp.Hourly.Temperature) {
			entry.TempC = int(math.Round(resp.Hourly.Temperature[i]))
		}
		if i < len(resp.Hourly.WeatherCodes) {
			entry.Code = resp.Hourly.WeatherCodes[i]
		}
		if i < len(resp.Hourly.PrecipProb) {
			entry.Pop = resp.Hourly.PrecipProb[i]
		}
		entry.Kind = models.ClassifyWeatherCode(entry.Code)
		entry.Description = models.DescribeWeatherCode(entry.Code)
		out = append(out, entry)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather provider returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
