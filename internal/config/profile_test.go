package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "routing.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadRoutingProfile(t *testing.T) {
	path := writeProfile(t, `
departure: 2024-03-05T08:00:00Z
transport_modes: [transit]
departure_window_minutes: 60
max_travel_minutes: 45
speed_walking_kmh: 4.5
speed_cycling_kmh: 15.0
`)

	p, err := LoadRoutingProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	if !p.Departure.Equal(want) {
		t.Fatalf("departure = %v, want %v", p.Departure, want)
	}
	if p.MaxTravelMinutes != 45 {
		t.Fatalf("max travel = %d, want 45", p.MaxTravelMinutes)
	}
}

func TestLoadRoutingProfileDefaults(t *testing.T) {
	path := writeProfile(t, `
departure: 2024-03-05T08:00:00Z
`)

	p, err := LoadRoutingProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.TransportModes) != 1 || p.TransportModes[0] != "transit" {
		t.Fatalf("modes = %v, want [transit]", p.TransportModes)
	}
	if p.DepartureWindowMinutes != 60 || p.MaxTravelMinutes != 45 {
		t.Fatalf("window/max = %d/%d, want 60/45", p.DepartureWindowMinutes, p.MaxTravelMinutes)
	}
	if p.SpeedWalkingKmh != 4.5 || p.SpeedCyclingKmh != 15.0 {
		t.Fatalf("speeds = %v/%v, want 4.5/15", p.SpeedWalkingKmh, p.SpeedCyclingKmh)
	}
}

func TestLoadRoutingProfileRejectsUnknownMode(t *testing.T) {
	path := writeProfile(t, `
departure: 2024-03-05T08:00:00Z
transport_modes: [teleport]
`)

	if _, err := LoadRoutingProfile(path); err == nil {
		t.Fatal("expected validation error for unknown mode, got nil")
	}
}

func TestLoadRoutingProfileMissingDeparture(t *testing.T) {
	path := writeProfile(t, `
transport_modes: [transit]
`)

	if _, err := LoadRoutingProfile(path); err == nil {
		t.Fatal("expected validation error for missing departure, got nil")
	}
}
