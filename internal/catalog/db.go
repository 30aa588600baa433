package catalog

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/ovenworks/bakelab/internal/model"
)

// DBCatalog is a Catalog backed by a database, for deployments that manage
// the ingredient catalog outside the binary.
type DBCatalog struct {
	db *gorm.DB
}

// NewDBCatalog creates a catalog reading from the given database.
func NewDBCatalog(db *gorm.DB) *DBCatalog {
	return &DBCatalog{db: db}
}

// GetIngredient looks up an ingredient by id. Database errors other than
// not-found are logged and reported as absent, keeping the lookup contract
// error-free.
func (c *DBCatalog) GetIngredient(id string) (model.Ingredient, bool) {
	var ing model.Ingredient
	if err := c.db.First(&ing, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[Catalog] lookup failed for %q: %v", id, err)
		}
		return model.Ingredient{}, false
	}
	return ing, true
}

// Migrate creates the ingredients table if needed.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Ingredient{})
}
