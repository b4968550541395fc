package weather

import (
	"context"
	"errors"
	"log"

	"github.com/i474232898/city-weather/internal/store"
)

// ErrForecastUnavailable is returned by Search when the city resolved but the
// forecast fetch failed. The returned SearchResult still carries the
// canonical city and the append outcome.
var ErrForecastUnavailable = errors.New("forecast unavailable")

// Service orchestrates one weather search: resolve the city, record it in
// the session's history, fetch the forecast.
type Service struct {
	geo      *GeocodingClient
	forecast *ForecastClient
	history  *store.HistoryStore
}

// NewService creates a new Service.
func NewService(geo *GeocodingClient, forecast *ForecastClient, history *store.HistoryStore) *Service {
	return &Service{
		geo:      geo,
		forecast: forecast,
		history:  history,
	}
}

// SearchResult is the outcome of one search.
type SearchResult struct {
	City     string // canonical "Name, Country"
	Forecast *ForecastData
	Append   store.AppendResult
}

// Search runs the search flow for one request. A resolution failure is
// terminal: no history record is written and the error is returned as-is.
// A history append failure is logged and absorbed. A forecast failure
// returns the partial result together with ErrForecastUnavailable.
func (s *Service) Search(ctx context.Context, sessionID, rawCity string) (SearchResult, error) {
	loc, err := s.geo.Resolve(ctx, rawCity)
	if err != nil {
		return SearchResult{}, err
	}

	res := SearchResult{City: loc.Label()}

	// Best effort: a failed append must not abort the request.
	res.Append = s.history.Append(sessionID, res.City)
	if res.Append.Outcome == store.AppendFailed {
		log.Printf("search: history append failed for session %s: %v", sessionID, res.Append.Err)
	} else {
		log.Printf("search: saved history session=%s city=%s", sessionID, res.City)
	}

	fc, err := s.forecast.Fetch(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return res, ErrForecastUnavailable
	}
	res.Forecast = fc

	return res, nil
}
