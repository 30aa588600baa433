package main

import (
	"log"
	"os"

	"gorm.io/gorm/clause"

	"github.com/ovenworks/bakelab/internal/catalog"
	"github.com/ovenworks/bakelab/internal/database"
)

// Seeds the ingredient catalog database with the built-in ingredient set.
// Existing rows with the same id are updated in place.
func main() {
	driver := os.Getenv("CATALOG_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}
	dsn := os.Getenv("CATALOG_DSN")
	if dsn == "" {
		log.Fatal("CATALOG_DSN must be set")
	}

	db, err := database.OpenCatalog(driver, dsn)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}

	if err := catalog.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate catalog schema: %v", err)
	}

	ingredients := catalog.BuiltinIngredients()
	result := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&ingredients)
	if result.Error != nil {
		log.Fatalf("Failed to seed ingredients: %v", result.Error)
	}

	log.Printf("Seeded %d ingredients", len(ingredients))
}
