package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"
)

// hourlyFields is the comma-joined list of hourly variables requested from
// the forecast API.
const hourlyFields = "temperature_2m,weathercode,precipitation,windspeed_10m"

// ForecastClient fetches hourly forecasts from the Open-Meteo forecast API.
type ForecastClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewForecastClient(client *http.Client, baseURL string) *ForecastClient {
	return &ForecastClient{
		baseURL: baseURL,
		client:  client,
		circuit: newCircuit("forecast"),
	}
}

// Fetch requests the hourly forecast for the given coordinates. The payload
// is decoded and handed back as-is; no field is validated or transformed.
func (f *ForecastClient) Fetch(ctx context.Context, lat, lon float64) (*ForecastData, error) {
	log.Printf("forecast: fetching weather for %.4f, %.4f", lat, lon)

	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("hourly", hourlyFields)

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", f.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := doRequest(ctx, f.client, f.circuit, req)
	if err != nil {
		log.Printf("forecast: fetch failed for %.4f, %.4f: %v", lat, lon, err)
		return nil, fmt.Errorf("forecast fetch: %w", err)
	}
	defer resp.Body.Close()

	var payload ForecastData
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("forecast: bad response: %v", err)
		return nil, fmt.Errorf("forecast fetch: %w", err)
	}

	return &payload, nil
}
