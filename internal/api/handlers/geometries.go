package handlers

import (
	"context"
	"log"
	"net/http"

	"travel-access-service/internal/api/dto"
	"travel-access-service/internal/domain"
	"travel-access-service/internal/ports"
)

// GeometryHandler exposes read-only origin and destination retrieval.
type GeometryHandler struct {
	Repo ports.GeometryRepository
}

func (h *GeometryHandler) Origins(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Repo.ListOrigins)
}

func (h *GeometryHandler) Destinations(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Repo.ListDestinations)
}

func (h *GeometryHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(ctx context.Context) ([]domain.Point, error),
) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	points, err := fetch(r.Context())
	if err != nil {
		log.Printf("list geometries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPointsResponse{
		Points: make([]dto.PointResponse, 0, len(points)),
	}
	for _, p := range points {
		res.Points = append(res.Points, dto.PointResponse{
			ID:   p.ID,
			Name: p.Name,
			Lon:  p.Location.Lon,
			Lat:  p.Location.Lat,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
