package services

import (
	"context"
	"testing"

	"travel-access-service/internal/adapters/routing"
	"travel-access-service/internal/domain"
)

// fakeCache is an in-memory MatrixCache for tests.
type fakeCache struct {
	rows map[string]map[string]*float64
	gets int
	puts int
}

func newFakeCache() *fakeCache {
	return &fakeCache{rows: make(map[string]map[string]*float64)}
}

func (c *fakeCache) GetMany(_ context.Context, originID string, destinationIDs []string) (map[string]*float64, error) {
	c.gets++
	out := make(map[string]*float64)
	row, ok := c.rows[originID]
	if !ok {
		return out, nil
	}
	for _, d := range destinationIDs {
		if v, ok := row[d]; ok {
			out[d] = v
		}
	}
	return out, nil
}

func (c *fakeCache) PutMany(_ context.Context, originID string, minutes map[string]*float64) error {
	c.puts++
	row := make(map[string]*float64, len(minutes))
	for k, v := range minutes {
		row[k] = v
	}
	c.rows[originID] = row
	return nil
}

// countingProvider wraps a provider and counts engine calls.
type countingProvider struct {
	inner *routing.MockProvider
	calls int
}

func (p *countingProvider) TravelTimes(ctx context.Context, origins, destinations []domain.Point) ([]domain.TravelTime, error) {
	p.calls++
	return p.inner.TravelTimes(ctx, origins, destinations)
}

func matrixTestGeometries() ([]domain.Point, []domain.Point) {
	origins := []domain.Point{
		{ID: "A", Location: domain.Coordinates{Lon: -3.00, Lat: 51.58}},
		{ID: "B", Location: domain.Coordinates{Lon: -3.01, Lat: 51.59}},
	}
	destinations := []domain.Point{
		{ID: "D1", Location: domain.Coordinates{Lon: -2.99, Lat: 51.57}},
		{ID: "D2", Location: domain.Coordinates{Lon: -2.95, Lat: 51.55}},
	}
	return origins, destinations
}

func TestComputeMatrixFullTable(t *testing.T) {
	origins, destinations := matrixTestGeometries()

	provider := routing.NewMockProvider([]routing.MockPair{
		{From: "A", To: "D1", Minutes: 10},
		{From: "A", To: "D2", Minutes: 30},
		{From: "B", To: "D1", Minutes: 15},
		// B -> D2 unlisted: unreachable.
	})

	matrix, err := ComputeMatrix(context.Background(), origins, destinations, provider, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(matrix.Records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(matrix.Records))
	}

	byPair := make(map[string]*float64, len(matrix.Records))
	for _, r := range matrix.Records {
		byPair[r.FromID+"|"+r.ToID] = r.Minutes
	}

	if v := byPair["A|D1"]; v == nil || *v != 10 {
		t.Fatalf("A->D1 = %v, want 10", v)
	}
	if v := byPair["B|D2"]; v != nil {
		t.Fatalf("B->D2 = %v, want nil (unreachable)", *v)
	}
}

func TestComputeMatrixUsesCache(t *testing.T) {
	origins, destinations := matrixTestGeometries()

	provider := &countingProvider{inner: routing.NewMockProvider([]routing.MockPair{
		{From: "A", To: "D1", Minutes: 10},
		{From: "A", To: "D2", Minutes: 30},
		{From: "B", To: "D1", Minutes: 15},
	})}
	cache := newFakeCache()

	first, err := ComputeMatrix(context.Background(), origins, destinations, provider, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("engine calls after cold run = %d, want 1", provider.calls)
	}
	if cache.puts != 2 {
		t.Fatalf("cache writes = %d, want 2 (one row per origin)", cache.puts)
	}

	second, err := ComputeMatrix(context.Background(), origins, destinations, provider, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("engine calls after warm run = %d, want 1 (all rows cached)", provider.calls)
	}

	if len(first.Records) != len(second.Records) {
		t.Fatalf("warm run returned %d records, want %d", len(second.Records), len(first.Records))
	}

	// The cached unreachable pair must come back as nil, not be recomputed
	// or turned into a number.
	for _, r := range second.Records {
		if r.FromID == "B" && r.ToID == "D2" && r.Minutes != nil {
			t.Fatalf("cached unreachable pair B->D2 = %v, want nil", *r.Minutes)
		}
	}
}

func TestComputeMatrixRejectsDuplicateIDs(t *testing.T) {
	origins, destinations := matrixTestGeometries()
	origins = append(origins, origins[0])

	provider := routing.NewMockProvider(nil)

	_, err := ComputeMatrix(context.Background(), origins, destinations, provider, nil)
	if err == nil {
		t.Fatal("expected error for duplicate origin id, got nil")
	}
}
