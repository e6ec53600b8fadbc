// Package weather looks up current conditions for a city by chaining two
// public services: Nominatim for geocoding and the NWS forecast API for the
// conditions at the resolved coordinates.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vkotlyar/homesense/internal/common"
)

const (
	defaultGeocodeBase  = "https://nominatim.openstreetmap.org"
	defaultForecastBase = "https://api.weather.gov"

	// Nominatim's usage policy requires an identifying agent.
	userAgent = "homesense/1.0"
)

// Report is the condition summary returned to clients.
type Report struct {
	Location    string
	Condition   string
	Temperature float64
	Unit        string
}

// Client resolves city names to current weather conditions. The zero value
// is not usable; construct with New.
type Client struct {
	httpc        *http.Client
	geocodeBase  string
	forecastBase string
}

// Option adjusts a Client. Used by tests to point at local stand-ins.
type Option func(*Client)

// WithBaseURLs overrides the upstream endpoints.
func WithBaseURLs(geocode, forecast string) Option {
	return func(c *Client) {
		c.geocodeBase = geocode
		c.forecastBase = forecast
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New constructs a weather client.
func New(opts ...Option) *Client {
	c := &Client{
		httpc:        &http.Client{Timeout: 10 * time.Second},
		geocodeBase:  defaultGeocodeBase,
		forecastBase: defaultForecastBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geocodeResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type pointsResponse struct {
	Properties struct {
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []struct {
			ShortForecast   string  `json:"shortForecast"`
			Temperature     float64 `json:"temperature"`
			TemperatureUnit string  `json:"temperatureUnit"`
		} `json:"periods"`
	} `json:"properties"`
}

// Current returns the current conditions for a city. An unknown city yields
// common.ErrorNotFound; upstream failures wrap common.ErrorUpstream.
func (c *Client) Current(ctx context.Context, city string) (*Report, error) {
	if city == "" {
		return nil, common.ErrorInvalidRequest
	}

	loc, err := c.geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	forecastURL, err := c.forecastEndpoint(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return nil, err
	}

	var fc forecastResponse
	if err := c.getJSON(ctx, forecastURL, &fc); err != nil {
		return nil, err
	}
	if len(fc.Properties.Periods) == 0 {
		return nil, fmt.Errorf("%w: forecast has no periods", common.ErrorUpstream)
	}

	period := fc.Properties.Periods[0]
	return &Report{
		Location:    loc.DisplayName,
		Condition:   period.ShortForecast,
		Temperature: period.Temperature,
		Unit:        period.TemperatureUnit,
	}, nil
}

func (c *Client) geocode(ctx context.Context, city string) (*geocodeResult, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.geocodeBase, url.QueryEscape(city))

	var results []geocodeResult
	if err := c.getJSON(ctx, u, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrorNotFound
	}
	return &results[0], nil
}

func (c *Client) forecastEndpoint(ctx context.Context, lat, lon string) (string, error) {
	u := fmt.Sprintf("%s/points/%s,%s", c.forecastBase, lat, lon)

	var points pointsResponse
	if err := c.getJSON(ctx, u, &points); err != nil {
		return "", err
	}
	if points.Properties.Forecast == "" {
		return "", fmt.Errorf("%w: points response has no forecast url", common.ErrorUpstream)
	}
	return points.Properties.Forecast, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d from %s", common.ErrorUpstream, resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", common.ErrorUpstream, err)
	}
	return nil
}
