package routing

import (
	"errors"
	"net/http"
	"time"

	"travel-access-service/internal/config"
)

// EngineProvider implements TravelTimeProvider against the HTTP matrix
// endpoint of an external multi-modal routing engine.
//
// The engine owns the hard parts: network graph construction from map data,
// transit-schedule-aware path search and departure-window sampling. This
// adapter only ships coordinates out and decodes the travel-time table that
// comes back, with retry/backoff around transient failures.
//
// The provider is safe for concurrent use.
type EngineProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile config.RoutingProfile
}

func NewEngineProvider(baseURL, apiKey string, profile config.RoutingProfile) (*EngineProvider, error) {
	if baseURL == "" {
		return nil, errors.New("routing engine base URL is empty")
	}

	return &EngineProvider{
		session: &http.Client{Timeout: 60 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
		profile: profile,
	}, nil
}
