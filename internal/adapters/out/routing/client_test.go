package routing

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		t.Fatalf("new geo point: %v", err)
	}
	return p
}

func TestClientRouteMatrixRequest(t *testing.T) {
	const expectedURL = "http://routing.test/v1/routes:matrix"
	respBody := `{"legs":[{"distanceKm":4.2,"durationMin":18},{"distanceKm":1.1,"durationMin":5}]}`

	var capturedURL string
	var capturedHeaders http.Header

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		capturedHeaders = req.Header.Clone()

		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		var payload map[string]any
		if err := json.Unmarshal(bodyBytes, &payload); err != nil {
			t.Fatalf("unmarshal request body: %v", err)
		}
		origin, ok := payload["origin"].(map[string]any)
		if !ok || origin["lat"] != 52.52 {
			t.Fatalf("unexpected origin %v", payload["origin"])
		}
		dests, ok := payload["destinations"].([]any)
		if !ok || len(dests) != 2 {
			t.Fatalf("unexpected destinations %v", payload["destinations"])
		}

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(respBody)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key",
		WithBaseURL("http://routing.test/v1"),
		WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	legs, err := client.RouteMatrix(context.Background(),
		testPoint(t, 52.52, 13.40),
		[]kernel.GeoPoint{testPoint(t, 52.50, 13.45), testPoint(t, 52.51, 13.41)})
	if err != nil {
		t.Fatalf("route matrix: %v", err)
	}

	if capturedURL != expectedURL {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	if capturedHeaders.Get("X-Api-Key") != "test-key" {
		t.Fatalf("api key header missing")
	}
	if len(legs) != 2 || legs[0].DistanceKm != 4.2 || legs[1].DurationMin != 5 {
		t.Fatalf("unexpected legs %+v", legs)
	}
}

func TestClientRouteUnwrapsSingleLeg(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"legs":[{"distanceKm":4.2,"durationMin":18}]}`)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	leg, err := client.Route(context.Background(),
		testPoint(t, 52.52, 13.40), testPoint(t, 52.50, 13.45))
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if leg.DistanceKm != 4.2 || leg.DurationMin != 18 {
		t.Fatalf("unexpected leg %+v", leg)
	}
}

func TestClientRouteMatrixNon200Status(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader("upstream overloaded")),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.RouteMatrix(context.Background(),
		testPoint(t, 52.52, 13.40), []kernel.GeoPoint{testPoint(t, 52.50, 13.45)})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "status 503") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestClientRouteMatrixLegCountMismatch(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"legs":[]}`)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.RouteMatrix(context.Background(),
		testPoint(t, 52.52, 13.40), []kernel.GeoPoint{testPoint(t, 52.50, 13.45)})
	if err == nil {
		t.Fatal("expected error for leg count mismatch")
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatal("expected error for blank api key")
	}
}
