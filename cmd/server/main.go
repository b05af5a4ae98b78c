package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"travel-access-service/internal/adapters/cache"
	"travel-access-service/internal/adapters/repositories"
	"travel-access-service/internal/adapters/routing"
	"travel-access-service/internal/api"
	"travel-access-service/internal/config"
	"travel-access-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, routing engine) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	originsPath := config.Get("ORIGINS_PATH", "data/geometries/origins.geojson")
	originsIDProp := config.Get("ORIGINS_ID_PROPERTY", "id")
	destinationsPath := config.Get("DESTINATIONS_PATH", "data/geometries/destinations.geojson")
	destinationsIDProp := config.Get("DESTINATIONS_ID_PROPERTY", "id")
	profilePath := config.Get("PROFILE_PATH", "config/routing.yml")
	port := config.Get("PORT", "8080")

	engineURL := os.Getenv("ENGINE_URL")
	if strings.TrimSpace(engineURL) == "" {
		log.Fatal("ENGINE_URL is required")
	}
	engineKey := os.Getenv("ENGINE_API_KEY")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed geometry sets on startup for local runs.
	if err := initAndSeed(db, originsPath, originsIDProp, destinationsPath, destinationsIDProp); err != nil {
		log.Fatal(err)
	}

	profile, err := config.LoadRoutingProfile(profilePath)
	if err != nil {
		log.Fatal(err)
	}

	provider, err := routing.NewEngineProvider(engineURL, engineKey, profile)
	if err != nil {
		log.Fatal(err)
	}

	// The matrix cache avoids repeated engine calls: Redis when configured,
	// otherwise the local SQLite database.
	var matrixCache ports.MatrixCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		matrixCache = cache.NewRedisMatrixCache(client, 24*time.Hour)
		log.Printf("Using redis matrix cache addr=%s", addr)
	} else {
		matrixCache = cache.NewSqliteMatrixCache(db)
	}

	repo := repositories.NewSQLGeometryRepository(db)
	router := api.NewRouter(repo, provider, matrixCache)

	// Timeouts are tuned for cold-cache matrix computation (external engine latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, originsPath, originsIDProp, destinationsPath, destinationsIDProp string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromGeoJSON(db, repositories.Origins, originsPath, originsIDProp); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromGeoJSON(db, repositories.Destinations, destinationsPath, destinationsIDProp); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
