// Package caiyun implements the HTTP client for the Caiyun weather and
// geocoding endpoints.
package caiyun

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Accelerator586/SunnyWeather/internal/model"
)

// Client issues place search, realtime and daily forecast requests.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// New creates a weather API client.
func New(token, baseURL string, timeout time.Duration) *Client {
	return &Client{
		token:   token,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:     "caiyun",
			Interval: time.Minute,
			Timeout:  2 * time.Minute,
		}),
	}
}

// SearchPlaces looks up geocoding candidates for the given query.
func (c *Client) SearchPlaces(ctx context.Context, query string) (*PlaceResponse, error) {
	params := url.Values{
		"query": {query},
		"token": {c.token},
		"lang":  {"zh_CN"},
	}
	u := fmt.Sprintf("%s/v2/place?%s", c.baseURL, params.Encode())

	resp := new(PlaceResponse)
	if err := c.doRequest(ctx, u, resp); err != nil {
		return nil, fmt.Errorf("place search request: %w", err)
	}

	return resp, nil
}

// Realtime fetches current conditions for the given location.
func (c *Client) Realtime(ctx context.Context, loc model.Location) (*RealtimeResponse, error) {
	u := fmt.Sprintf("%s/v2.5/%s/%v,%v/realtime.json", c.baseURL, c.token, loc.Lng, loc.Lat)

	resp := new(RealtimeResponse)
	if err := c.doRequest(ctx, u, resp); err != nil {
		return nil, fmt.Errorf("realtime request: %w", err)
	}

	return resp, nil
}

// Daily fetches the multi-day forecast for the given location.
func (c *Client) Daily(ctx context.Context, loc model.Location) (*DailyResponse, error) {
	u := fmt.Sprintf("%s/v2.5/%s/%v,%v/daily.json", c.baseURL, c.token, loc.Lng, loc.Lat)

	resp := new(DailyResponse)
	if err := c.doRequest(ctx, u, resp); err != nil {
		return nil, fmt.Errorf("daily forecast request: %w", err)
	}

	return resp, nil
}

// doRequest performs a GET through the circuit breaker and decodes the JSON
// body into out. The breaker trips on transport failures only; the API's own
// status field is left for the caller to interpret.
func (c *Client) doRequest(ctx context.Context, fullURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return err
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
