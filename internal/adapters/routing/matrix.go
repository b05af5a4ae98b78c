package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"travel-access-service/internal/domain"
	"travel-access-service/internal/platform/obs"
)

type matrixRequest struct {
	Locations              [][]float64 `json:"locations"`
	Sources                []int       `json:"sources"`
	Destinations           []int       `json:"destinations"`
	Metrics                []string    `json:"metrics"`
	Departure              time.Time   `json:"departure"`
	TransportModes         []string    `json:"transport_modes"`
	DepartureWindowMinutes int         `json:"departure_window_minutes"`
	MaxTravelMinutes       int         `json:"max_travel_minutes"`
	SpeedWalkingKmh        float64     `json:"speed_walking_kmh"`
	SpeedCyclingKmh        float64     `json:"speed_cycling_kmh"`
}

type matrixResponse struct {
	// One row per source, one cell per destination. A nil cell means the
	// engine found no route within the configured bound.
	Durations [][]*float64 `json:"durations"`
}

// TravelTimes requests the origins x destinations travel-time matrix from
// the engine's matrix endpoint and decodes it into one record per pair.
// Durations come back in seconds and are rounded to tenths of a minute;
// nil cells are preserved as unreachable.
func (p *EngineProvider) TravelTimes(
	ctx context.Context,
	origins []domain.Point,
	destinations []domain.Point,
) (_ []domain.TravelTime, err error) {
	defer obs.Time(ctx, "engine.TravelTimes")(&err)

	if len(origins) == 0 || len(destinations) == 0 {
		return []domain.TravelTime{}, nil
	}

	endpoint := fmt.Sprintf("%s/v2/matrix/travel-time", p.baseURL)

	locations := make([][]float64, 0, len(origins)+len(destinations))
	for _, o := range origins {
		locations = append(locations, o.Location.CoordsToList())
	}
	for _, d := range destinations {
		locations = append(locations, d.Location.CoordsToList())
	}

	sourceIdx := make([]int, 0, len(origins))
	for i := range origins {
		sourceIdx = append(sourceIdx, i)
	}
	destIdx := make([]int, 0, len(destinations))
	for i := range destinations {
		destIdx = append(destIdx, len(origins)+i)
	}

	bodyObj := matrixRequest{
		Locations:              locations,
		Sources:                sourceIdx,
		Destinations:           destIdx,
		Metrics:                []string{"duration"},
		Departure:              p.profile.Departure,
		TransportModes:         p.profile.TransportModes,
		DepartureWindowMinutes: p.profile.DepartureWindowMinutes,
		MaxTravelMinutes:       p.profile.MaxTravelMinutes,
		SpeedWalkingKmh:        p.profile.SpeedWalkingKmh,
		SpeedCyclingKmh:        p.profile.SpeedCyclingKmh,
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal matrix request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return p.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return nil, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(mr.Durations) != len(origins) {
		return nil, fmt.Errorf(
			"expected %d duration rows; got %d",
			len(origins), len(mr.Durations),
		)
	}

	out := make([]domain.TravelTime, 0, len(origins)*len(destinations))
	for i, o := range origins {
		row := mr.Durations[i]
		if len(row) != len(destinations) {
			return nil, fmt.Errorf(
				"duration row %d length %d does not match %d destinations",
				i, len(row), len(destinations),
			)
		}

		for j, d := range destinations {
			var minutes *float64
			if row[j] != nil {
				m := math.Round(*row[j]/60*10) / 10
				minutes = &m
			}

			out = append(out, domain.TravelTime{
				FromID:  o.ID,
				ToID:    d.ID,
				Minutes: minutes,
			})
		}
	}

	return out, nil
}
