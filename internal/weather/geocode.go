package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"
)

// ErrCityNotFound is returned when geocoding yields no match for the input.
var ErrCityNotFound = errors.New("city not found")

// GeocodingClient resolves free-text city input against the Open-Meteo
// geocoding API.
type GeocodingClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewGeocodingClient(client *http.Client, baseURL string) *GeocodingClient {
	return &GeocodingClient{
		baseURL: baseURL,
		client:  client,
		circuit: newCircuit("geocoding"),
	}
}

// Resolve looks up the single best match for rawCity and returns its
// canonical location, coordinates included. Zero results yield
// ErrCityNotFound; transport errors and non-2xx statuses come back wrapped.
// Callers route every resolve failure to the same not-found rendering.
func (g *GeocodingClient) Resolve(ctx context.Context, rawCity string) (Location, error) {
	log.Printf("geocode: resolving city %q", rawCity)

	values := url.Values{}
	values.Set("name", rawCity)
	values.Set("count", "1")

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", g.baseURL, values.Encode()), nil)
	if err != nil {
		return Location{}, err
	}

	resp, err := doRequest(ctx, g.client, g.circuit, req)
	if err != nil {
		log.Printf("geocode: lookup failed for %q: %v", rawCity, err)
		return Location{}, fmt.Errorf("geocoding %q: %w", rawCity, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Results []Location `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("geocode: bad response for %q: %v", rawCity, err)
		return Location{}, fmt.Errorf("geocoding %q: %w", rawCity, err)
	}

	if len(payload.Results) == 0 {
		log.Printf("geocode: no match for %q", rawCity)
		return Location{}, ErrCityNotFound
	}

	loc := payload.Results[0]
	log.Printf("geocode: resolved %q to %s", rawCity, loc.Label())
	return loc, nil
}
