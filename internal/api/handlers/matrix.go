package handlers

import (
	"log"
	"net/http"

	"travel-access-service/internal/api/dto"
	"travel-access-service/internal/ports"
	"travel-access-service/internal/services"
)

type MatrixHandler struct {
	Repo     ports.GeometryRepository
	Provider ports.TravelTimeProvider
	Cache    ports.MatrixCache
}

// Compute runs the travel-time matrix for the stored geometry sets and
// returns the full table, unreachable pairs included as null travel times.
func (h *MatrixHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	origins, err := h.Repo.ListOrigins(r.Context())
	if err != nil {
		log.Printf("compute matrix: list origins failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	destinations, err := h.Repo.ListDestinations(r.Context())
	if err != nil {
		log.Printf("compute matrix: list destinations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	matrix, err := services.ComputeMatrix(r.Context(), origins, destinations, h.Provider, h.Cache)
	if err != nil {
		log.Printf("compute matrix failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.MatrixResponse{
		Records: make([]dto.TravelTimeResponse, 0, len(matrix.Records)),
	}
	for _, rec := range matrix.Records {
		res.Records = append(res.Records, dto.TravelTimeResponse{
			FromID:     rec.FromID,
			ToID:       rec.ToID,
			TravelTime: rec.Minutes,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
