package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

// defaultBaseURL is the OpenWeatherMap current-weather endpoint
const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// unit suffixes for the supported unit systems
var unitSuffix = map[string]string{"metric": "C", "imperial": "F", "kelvin": "K"}

// Report is a current-weather snapshot for the configured city
type Report struct {
	City        string
	Description string
	Temp        float64
	Units       string
}

// Summary renders the report as a short sentence appended to auto-posts
func (r Report) Summary() string {
	return fmt.Sprintf("The weather in %s is %d°%s and %s.",
		r.City, int(math.Round(r.Temp)), unitSuffix[r.Units], r.Description)
}

// Client looks up current weather from OpenWeatherMap
type Client struct {
	baseURL string
	apiKey  string
	city    string
	units   string
	client  *http.Client
}

// New creates a weather client. An empty apiKey produces a disabled client
// whose Current always errors, callers degrade gracefully.
func New(apiKey, city, units string, timeout time.Duration) *Client {
	if units == "" {
		units = "metric"
	}
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		city:    city,
		units:   units,
		client:  &http.Client{Timeout: timeout},
	}
}

// Current fetches the current weather for the configured city
func (c *Client) Current(ctx context.Context) (Report, error) {
	if c.apiKey == "" {
		return Report{}, fmt.Errorf("weather lookups disabled: no API key")
	}

	params := url.Values{}
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)
	params.Set("q", c.city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return Report{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather lookup failed: status %d", resp.StatusCode)
	}

	var payload struct {
		Name string `json:"name"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, fmt.Errorf("decode weather response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return Report{}, fmt.Errorf("weather response has no conditions")
	}

	return Report{
		City:        payload.Name,
		Description: payload.Weather[0].Description,
		Temp:        payload.Main.Temp,
		Units:       c.units,
	}, nil
}
