package api

import (
	"net/http"

	"travel-access-service/internal/api/handlers"
	"travel-access-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.GeometryRepository,
	provider ports.TravelTimeProvider,
	cache ports.MatrixCache,
) http.Handler {
	mux := http.NewServeMux()

	geoHandler := &handlers.GeometryHandler{Repo: repo}
	matrixHandler := &handlers.MatrixHandler{
		Repo:     repo,
		Provider: provider,
		Cache:    cache,
	}
	viewHandler := &handlers.ViewHandler{
		Repo:     repo,
		Provider: provider,
		Cache:    cache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/origins", geoHandler.Origins)
	mux.HandleFunc("/destinations", geoHandler.Destinations)
	mux.HandleFunc("/matrix", matrixHandler.Compute)
	mux.HandleFunc("/views/destination", viewHandler.Build)

	return loggingMiddleware(mux)
}
