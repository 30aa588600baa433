package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenCatalog opens the ingredient catalog database for the given driver.
func OpenCatalog(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		if err := waitForPostgres(dsn); err != nil {
			return nil, err
		}
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", driver)
	}
}

// waitForPostgres pings the server until it accepts connections, so the
// service can start alongside the database in compose setups.
func waitForPostgres(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer db.Close()

	const maxAttempts = 30
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = db.Ping(); err == nil {
			log.Printf("Successfully connected to catalog database")
			return nil
		}
		log.Printf("Waiting for catalog database (attempt %d/%d): %v", attempt, maxAttempts, err)
		time.Sleep(time.Second)
	}
	return fmt.Errorf("error connecting to the catalog database: %w", err)
}
