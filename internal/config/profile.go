package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RoutingProfile carries the travel-time computation parameters forwarded to
// the routing engine: when to depart, which modes to consider, how long a
// trip may take, and the active-travel speed assumptions.
type RoutingProfile struct {
	Departure              time.Time `yaml:"departure" validate:"required"`
	TransportModes         []string  `yaml:"transport_modes" validate:"required,min=1,dive,oneof=transit walk bicycle car"`
	DepartureWindowMinutes int       `yaml:"departure_window_minutes" validate:"gt=0"`
	MaxTravelMinutes       int       `yaml:"max_travel_minutes" validate:"gt=0"`
	SpeedWalkingKmh        float64   `yaml:"speed_walking_kmh" validate:"gt=0"`
	SpeedCyclingKmh        float64   `yaml:"speed_cycling_kmh" validate:"gt=0"`
}

// LoadRoutingProfile reads and validates a routing profile from a YAML file.
// Omitted numeric fields receive defaults before validation runs.
func LoadRoutingProfile(path string) (RoutingProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RoutingProfile{}, fmt.Errorf("load routing profile: read %q: %w", path, err)
	}

	var p RoutingProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return RoutingProfile{}, fmt.Errorf("load routing profile: parse yaml: %w", err)
	}

	if len(p.TransportModes) == 0 {
		p.TransportModes = []string{"transit"}
	}
	if p.DepartureWindowMinutes == 0 {
		p.DepartureWindowMinutes = 60
	}
	if p.MaxTravelMinutes == 0 {
		p.MaxTravelMinutes = 45
	}
	if p.SpeedWalkingKmh == 0 {
		p.SpeedWalkingKmh = 4.5
	}
	if p.SpeedCyclingKmh == 0 {
		p.SpeedCyclingKmh = 15.0
	}

	v := validator.New()
	if err := v.Struct(p); err != nil {
		return RoutingProfile{}, fmt.Errorf("load routing profile: validate: %w", err)
	}

	return p, nil
}
