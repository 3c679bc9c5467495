package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"weather-dashboard/datasource"
	"weather-dashboard/metrics"
	"weather-dashboard/models"
)

// DefaultBaseURL is the OpenWeatherMap 2.5 REST root
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

const providerName = "OpenWeatherMap"

// Client talks to the OpenWeatherMap current weather and forecast endpoints
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Ensure Client implements datasource.Provider
var _ datasource.Provider = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at a different API root
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new OpenWeatherMap client
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("component", "openweathermap").Logger()
	return c
}

// Name returns the provider name
func (c *Client) Name() string {
	return providerName
}

type currentResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Name string `json:"name"`
}

// GetWeather fetches current conditions for a city
func (c *Client) GetWeather(ctx context.Context, city string) (models.CurrentWeather, error) {
	var resp currentResponse
	if err := c.get(ctx, "weather", city, &resp); err != nil {
		return models.CurrentWeather{}, fmt.Errorf("fetch current weather: %w", err)
	}

	data := models.CurrentWeather{
		Name:        resp.Name,
		Country:     resp.Sys.Country,
		Temperature: resp.Main.Temp,
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
		Coord:       models.Coordinates{Lat: resp.Coord.Lat, Lon: resp.Coord.Lon},
		Timestamp:   time.Unix(resp.Dt, 0),
	}

	if len(resp.Weather) > 0 {
		data.Description = resp.Weather[0].Description
		data.Icon = resp.Weather[0].Icon
	}

	return data, nil
}

type errorResponse struct {
	Message string `json:"message"`
}

// get issues GET {baseURL}/{endpoint}?q=city&appid=key&units=metric and decodes the body into out
func (c *Client) get(ctx context.Context, endpoint, city string, out any) error {
	// Build URL
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", c.apiKey)
	params.Add("units", "metric")
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Execute request
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(endpoint, 0, time.Since(start))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)
	metrics.RecordUpstreamRequest(endpoint, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("city", city).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("provider request completed")

	if resp.StatusCode != http.StatusOK {
		apiErr := &datasource.APIError{Provider: providerName, StatusCode: resp.StatusCode}
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
		} else {
			apiErr.Message = string(body)
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
