// Package routing implements the RoutingClient port over an external
// distance-matrix HTTP API. Every quote and live estimate in the core goes
// through this client; any failure surfaces to the caller as an error and is
// never replaced by a default distance.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

const (
	defaultBaseURL              = "https://routing.internal/v1"
	responseBodyReadLimit int64 = 1024
)

var errAPIKeyRequired = errors.New("routing api key is required")

// Client calls the distance-matrix API over HTTP. It implements
// services.RoutingClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured routing base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// NewClient builds the routing client given an API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, errAPIKeyRequired
	}

	client := &Client{
		apiKey:     trimmedKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

type pointPayload struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type matrixRequest struct {
	Origin       pointPayload   `json:"origin"`
	Destinations []pointPayload `json:"destinations"`
}

type matrixResponse struct {
	Legs []struct {
		DistanceKm  float64 `json:"distanceKm"`
		DurationMin int     `json:"durationMin"`
	} `json:"legs"`
}

// Route returns distance and duration for a single origin-destination pair.
func (c *Client) Route(ctx context.Context, origin, destination kernel.GeoPoint) (services.RouteLeg, error) {
	legs, err := c.RouteMatrix(ctx, origin, []kernel.GeoPoint{destination})
	if err != nil {
		return services.RouteLeg{}, err
	}
	if len(legs) != 1 {
		return services.RouteLeg{}, errs.NewValueIsInvalidError(
			fmt.Sprintf("expected 1 route leg, got %d", len(legs)))
	}

	return legs[0], nil
}

// RouteMatrix returns one leg per destination for a shared origin, aligned
// by index with the destinations slice.
func (c *Client) RouteMatrix(
	ctx context.Context,
	origin kernel.GeoPoint,
	destinations []kernel.GeoPoint,
) ([]services.RouteLeg, error) {
	if len(destinations) == 0 {
		return nil, errs.NewValueIsRequiredError("destinations")
	}

	payload := matrixRequest{
		Origin: pointPayload{Lat: origin.Lat(), Lon: origin.Lon()},
	}
	for _, d := range destinations {
		payload.Destinations = append(payload.Destinations, pointPayload{Lat: d.Lat(), Lon: d.Lon()})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal route matrix request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.buildURL("routes:matrix"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build route matrix request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute route matrix request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return nil, fmt.Errorf("route matrix request failed: status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var apiResp matrixResponse
	if err = json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode route matrix response: %w", err)
	}
	if len(apiResp.Legs) != len(destinations) {
		return nil, fmt.Errorf("route matrix returned %d legs for %d destinations",
			len(apiResp.Legs), len(destinations))
	}

	legs := make([]services.RouteLeg, 0, len(apiResp.Legs))
	for _, leg := range apiResp.Legs {
		legs = append(legs, services.RouteLeg{
			DistanceKm:  leg.DistanceKm,
			DurationMin: leg.DurationMin,
		})
	}

	return legs, nil
}

func (c *Client) buildURL(path string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL, "/"), strings.TrimLeft(path, "/"))
}
