package main

import (
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"airport-nav-service/internal/adapters/repositories"
	"airport-nav-service/internal/config"
	"airport-nav-service/internal/platform/db"
)

// dbtool initializes the schema and seeds demo facilities. Safe to run
// repeatedly: seeding skips records whose name already exists.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/facilities.json")
	log.Println("Seeding facilities...")
	if err := repositories.SeedFromJSON(database, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
