package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"travel-access-service/internal/adapters/repositories"
	"travel-access-service/internal/config"
	"travel-access-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	originsPath := config.Get("ORIGINS_PATH", "data/geometries/origins.geojson")
	originsIDProp := config.Get("ORIGINS_ID_PROPERTY", "id")
	destinationsPath := config.Get("DESTINATIONS_PATH", "data/geometries/destinations.geojson")
	destinationsIDProp := config.Get("DESTINATIONS_ID_PROPERTY", "id")

	initAndSeed(db, originsPath, originsIDProp, destinationsPath, destinationsIDProp)
}

func initAndSeed(db *sql.DB, originsPath, originsIDProp, destinationsPath, destinationsIDProp string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding geometry sets...")
	if err := repositories.SeedFromGeoJSON(db, repositories.Origins, originsPath, originsIDProp); err != nil {
		log.Fatalf("seeding origins failed: %v", err)
	}
	if err := repositories.SeedFromGeoJSON(db, repositories.Destinations, destinationsPath, destinationsIDProp); err != nil {
		log.Fatalf("seeding destinations failed: %v", err)
	}
	log.Println("Seeding complete.")
}
