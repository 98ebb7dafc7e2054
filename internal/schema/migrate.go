package schema

import (
	"fmt"

	"gorm.io/gorm"

	catalog "github.com/tair/inventory-tracker/internal/catalog/domain"
	stock "github.com/tair/inventory-tracker/internal/stock/domain"
	user "github.com/tair/inventory-tracker/internal/user/domain"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&catalog.Service{},
		&catalog.Product{},
		&catalog.Brand{},
		&stock.StockIn{},
		&stock.StockOut{},
	}
}

// Migrate creates or updates all tables
func Migrate(db *gorm.DB) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}
