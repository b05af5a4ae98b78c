package routing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-access-service/internal/config"
	"travel-access-service/internal/domain"
)

func testProfile() config.RoutingProfile {
	return config.RoutingProfile{
		Departure:              time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC),
		TransportModes:         []string{"transit"},
		DepartureWindowMinutes: 60,
		MaxTravelMinutes:       45,
		SpeedWalkingKmh:        4.5,
		SpeedCyclingKmh:        15.0,
	}
}

func testPoints() ([]domain.Point, []domain.Point) {
	origins := []domain.Point{
		{ID: "A", Location: domain.Coordinates{Lon: -3.00, Lat: 51.58}},
		{ID: "B", Location: domain.Coordinates{Lon: -3.01, Lat: 51.59}},
	}
	destinations := []domain.Point{
		{ID: "D1", Location: domain.Coordinates{Lon: -2.99, Lat: 51.57}},
	}
	return origins, destinations
}

func TestEngineProviderDecodesMatrix(t *testing.T) {
	var gotReq matrixRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}

		// 600s and an unreachable cell.
		six := 600.0
		resp := matrixResponse{Durations: [][]*float64{
			{&six},
			{nil},
		}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	provider, err := NewEngineProvider(srv.URL, "test-key", testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	origins, destinations := testPoints()
	records, err := provider.TravelTimes(context.Background(), origins, destinations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[0].FromID != "A" || records[0].ToID != "D1" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[0].Minutes == nil || *records[0].Minutes != 10 {
		t.Fatalf("A->D1 minutes = %v, want 10", records[0].Minutes)
	}
	if records[1].Minutes != nil {
		t.Fatalf("B->D1 minutes = %v, want nil", *records[1].Minutes)
	}

	if len(gotReq.Locations) != 3 {
		t.Fatalf("request locations = %d, want 3", len(gotReq.Locations))
	}
	if gotReq.MaxTravelMinutes != 45 || gotReq.DepartureWindowMinutes != 60 {
		t.Fatalf("profile not forwarded: %+v", gotReq)
	}
}

func TestEngineProviderRetriesTransientFailures(t *testing.T) {
	attempts := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}

		ten := 600.0
		resp := matrixResponse{Durations: [][]*float64{{&ten}, {&ten}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	provider, err := NewEngineProvider(srv.URL, "", testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	origins, destinations := testPoints()
	records, err := provider.TravelTimes(context.Background(), origins, destinations)
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}

	if attempts != 2 {
		t.Fatalf("attempts = %d, want 2", attempts)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestEngineProviderRowLengthMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := matrixResponse{Durations: [][]*float64{{}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	provider, err := NewEngineProvider(srv.URL, "", testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	origins, destinations := testPoints()
	if _, err := provider.TravelTimes(context.Background(), origins, destinations); err == nil {
		t.Fatal("expected error for malformed response, got nil")
	}
}
