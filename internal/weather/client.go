// Package weather fetches the session weather snapshot from the open-meteo
// forecast API and resolves a display name for the coordinates through the
// BigDataCloud reverse geocoder.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/example/cropdoctor/internal/config"
	"github.com/example/cropdoctor/internal/logger"
	"github.com/example/cropdoctor/internal/models"
)

// Client issues one forecast and one reverse-geocoding request per fetch.
// No caching and no retry: the orchestrator calls Fetch once per session.
type Client struct {
	forecastURL string
	geocodeURL  string
	httpClient  *http.Client
}

// NewClient creates a weather client for the configured endpoints.
func NewClient(cfg config.WeatherConfig) *Client {
	return &Client{
		forecastURL: cfg.ForecastURL,
		geocodeURL:  cfg.GeocodeURL,
		httpClient:  &http.Client{},
	}
}

// forecastResponse models the open-meteo payload fields the app reads.
type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		Rain        float64 `json:"rain"`
		Showers     float64 `json:"showers"`
		CloudCover  float64 `json:"cloud_cover"`
	} `json:"current"`
	Daily struct {
		PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
	} `json:"daily"`
}

type geocodeResponse struct {
	City                 string `json:"city"`
	Locality             string `json:"locality"`
	PrincipalSubdivision string `json:"principalSubdivision"`
}

// Fetch returns the normalized snapshot for the coordinates. A geocoding
// failure degrades to a coordinate-based location name; a forecast failure is
// returned to the caller, which substitutes DefaultSnapshot.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	forecast, err := c.fetchForecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	// Rain or showers dominate cloud cover.
	condition := models.ConditionSunny
	if forecast.Current.Rain > 0 || forecast.Current.Showers > 0 {
		condition = models.ConditionRainy
	} else if forecast.Current.CloudCover > 50 {
		condition = models.ConditionCloudy
	}

	locationName, err := c.fetchLocationName(ctx, lat, lon)
	if err != nil {
		logger.Warn("reverse geocoding failed", "err", err)
		locationName = fmt.Sprintf("%.2f°N, %.2f°E", lat, lon)
	}

	rainChance := 0
	if len(forecast.Daily.PrecipitationProbabilityMax) > 0 {
		rainChance = int(forecast.Daily.PrecipitationProbabilityMax[0])
	}

	return &models.WeatherSnapshot{
		Temperature:  int(math.Round(forecast.Current.Temperature)),
		Humidity:     int(math.Round(forecast.Current.Humidity)),
		RainChance:   rainChance,
		LocationName: locationName,
		Condition:    condition,
	}, nil
}

func (c *Client) fetchForecast(ctx context.Context, lat, lon float64) (*forecastResponse, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("current", "temperature_2m,relative_humidity_2m,rain,showers,cloud_cover")
	params.Set("daily", "precipitation_probability_max")
	params.Set("timezone", "auto")

	var forecast forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+params.Encode(), &forecast); err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}
	return &forecast, nil
}

func (c *Client) fetchLocationName(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("localityLanguage", "en")

	var geo geocodeResponse
	if err := c.getJSON(ctx, c.geocodeURL+"?"+params.Encode(), &geo); err != nil {
		return "", err
	}

	var parts []string
	if geo.City != "" {
		parts = append(parts, geo.City)
	} else if geo.Locality != "" {
		parts = append(parts, geo.Locality)
	}
	if geo.PrincipalSubdivision != "" {
		parts = append(parts, geo.PrincipalSubdivision)
	}
	if len(parts) == 0 {
		return "Your Farm", nil
	}
	name := parts[0]
	for _, p := range parts[1:] {
		name += ", " + p
	}
	return name, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, data)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DefaultSnapshot is the hard-coded fallback used whenever geolocation or the
// fetch pipeline fails.
func DefaultSnapshot() *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		Temperature:  28,
		Humidity:     65,
		RainChance:   20,
		LocationName: "Nashik, MH",
		Condition:    models.ConditionSunny,
	}
}
