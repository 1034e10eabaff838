package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"airport-nav-service/internal/domain"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFacilitiesQuery := `
	CREATE TABLE IF NOT EXISTS airport_facilities (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		category VARCHAR(50) NOT NULL,
		coordinates VARCHAR(50) NOT NULL,
		description VARCHAR(200),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createDistanceCacheQuery := `
	CREATE TABLE IF NOT EXISTS distance_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_meters DOUBLE PRECISION NOT NULL,
		duration_seconds DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createCategoryIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_airport_facilities_category
	ON airport_facilities(category);
	`

	statements := []string{
		createFacilitiesQuery,
		createDistanceCacheQuery,
		createCategoryIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type FacilitySeed struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Coordinates string `json:"coordinates"`
	Description string `json:"description"`
}

// Populate the database with facility data from a JSON file. Rows are
// validated before insertion; a malformed coordinate string rejects the
// whole file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed facilities: read %q: %w", jsonPath, err)
	}

	var data []FacilitySeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed facilities: parse json: %w", err)
	}

	rows := make([]FacilitySeed, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed facilities: item at index %d: name cannot be empty", i+1)
		}

		category := strings.TrimSpace(item.Category)
		if category == "" {
			return fmt.Errorf("seed facilities: item at index %d: category cannot be empty", i+1)
		}

		if _, err := domain.ParseCoordinates(item.Coordinates); err != nil {
			return fmt.Errorf("seed facilities: item at index %d: %w", i+1, err)
		}

		rows = append(rows, FacilitySeed{
			Name:        name,
			Category:    category,
			Coordinates: strings.TrimSpace(item.Coordinates),
			Description: strings.TrimSpace(item.Description),
		})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed facilities: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO airport_facilities (name, category, coordinates, description)
	SELECT $1, $2, $3, $4
	WHERE NOT EXISTS (
		SELECT 1 FROM airport_facilities WHERE name = $1
	);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed facilities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range rows {
		if _, err := stmt.Exec(f.Name, f.Category, f.Coordinates, f.Description); err != nil {
			return fmt.Errorf("seed facilities: insert %q: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed facilities: commit tx: %w", err)
	}

	return nil
}
