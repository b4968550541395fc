package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const vitebskGeoBody = `{"results":[{"name":"Vitebsk","country":"Belarus","latitude":55.1904,"longitude":30.2049}]}`

func TestResolveReturnsCanonicalLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "vitebsk" {
			t.Errorf("unexpected name query: %q", got)
		}
		if got := r.URL.Query().Get("count"); got != "1" {
			t.Errorf("unexpected count query: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(vitebskGeoBody))
	}))
	defer srv.Close()

	g := NewGeocodingClient(srv.Client(), srv.URL)

	loc, err := g.Resolve(context.Background(), "vitebsk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Label() != "Vitebsk, Belarus" {
		t.Fatalf("unexpected canonical label: %q", loc.Label())
	}
	if loc.Latitude != 55.1904 || loc.Longitude != 30.2049 {
		t.Fatalf("unexpected coordinates: %f, %f", loc.Latitude, loc.Longitude)
	}
}

func TestResolveNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	g := NewGeocodingClient(srv.Client(), srv.URL)

	_, err := g.Resolve(context.Background(), "nowhere-at-all")
	if !errors.Is(err, ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestResolveUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGeocodingClient(srv.Client(), srv.URL)

	_, err := g.Resolve(context.Background(), "vitebsk")
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if errors.Is(err, ErrCityNotFound) {
		t.Fatalf("upstream failure must not be ErrCityNotFound: %v", err)
	}
}
