package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"travel-access-service/internal/api/dto"
	"travel-access-service/internal/ports"
	"travel-access-service/internal/services"
)

type ViewHandler struct {
	Repo     ports.GeometryRepository
	Provider ports.TravelTimeProvider
	Cache    ports.MatrixCache
}

// Build composes the destination-focused map view: it loads the geometry
// sets, obtains the travel-time matrix and joins it onto the origins for the
// requested destination. The two validation failures of the view builder map
// to distinct statuses so clients can tell an unknown identifier from a
// destination nothing can reach.
func (h *ViewHandler) Build(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ViewRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	destinationID := strings.TrimSpace(req.DestinationID)
	if destinationID == "" {
		writeError(w, r, http.StatusBadRequest, "destination_id is required")
		return
	}

	origins, err := h.Repo.ListOrigins(r.Context())
	if err != nil {
		log.Printf("build view: list origins failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	destinations, err := h.Repo.ListDestinations(r.Context())
	if err != nil {
		log.Printf("build view: list destinations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	matrix, err := services.ComputeMatrix(r.Context(), origins, destinations, h.Provider, h.Cache)
	if err != nil {
		log.Printf("build view: compute matrix failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	view, err := services.BuildDestinationView(destinationID, matrix, origins, destinations)
	if err != nil {
		var notFound *services.DestinationNotFoundError
		if errors.As(err, &notFound) {
			writeError(w, r, http.StatusNotFound, notFound.Error())
			return
		}

		var unreachable *services.NoReachableOriginsError
		if errors.As(err, &unreachable) {
			writeError(w, r, http.StatusUnprocessableEntity, unreachable.Error())
			return
		}

		log.Printf("build view failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ViewResponse{
		Tiles: view.Tiles,
		Origins: dto.ChoroplethLayerResponse{
			ValueField:    view.Origins.ValueField,
			LegendCaption: view.Origins.LegendCaption,
			NullFillColor: view.Origins.NullFillColor,
			TooltipFields: view.Origins.TooltipFields,
			Features:      view.Origins.Features,
		},
		Destination: dto.MarkerLayerResponse{
			Icon: dto.MarkerIconResponse{
				Color:  view.Destination.Icon.Color,
				Prefix: view.Destination.Icon.Prefix,
				Icon:   view.Destination.Icon.Icon,
			},
			TooltipFields: view.Destination.TooltipFields,
			Features:      view.Destination.Features,
		},
	}

	writeJSON(w, r, http.StatusOK, res)
}
