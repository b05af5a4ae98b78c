package routing

import (
	"context"

	"travel-access-service/internal/domain"
)

type MockPair struct {
	From, To string
	Minutes  float64
}

// MockProvider serves fixed travel times for tests. Pairs not listed are
// reported as unreachable (nil minutes), matching how a real engine omits
// routes it cannot find.
type MockProvider struct {
	m map[string]float64
}

func NewMockProvider(pairs []MockPair) *MockProvider {
	m := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = p.Minutes
	}
	return &MockProvider{m: m}
}

func (p *MockProvider) TravelTimes(
	ctx context.Context,
	origins []domain.Point,
	destinations []domain.Point,
) ([]domain.TravelTime, error) {
	out := make([]domain.TravelTime, 0, len(origins)*len(destinations))
	for _, o := range origins {
		for _, d := range destinations {
			var minutes *float64
			if m, ok := p.m[o.ID+"|"+d.ID]; ok {
				v := m
				minutes = &v
			}
			out = append(out, domain.TravelTime{FromID: o.ID, ToID: d.ID, Minutes: minutes})
		}
	}
	return out, nil
}
