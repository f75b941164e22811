// cosmos-crm/config/database.go

package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cosmos-crm/models"
)

// ConnectDB opens the store selected by the DB_URL environment variable and
// returns the handle. When DB_URL is unset the service falls back to a local
// sqlite file so it runs without an external database.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn := os.Getenv("DB_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		slog.Warn("DB_URL is not set, using local sqlite store", "file", "app.db")
		dialector = sqlite.Open("app.db")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Schema evolution on real deployments is driven by external migration
	// tooling; automigrate keeps the local sqlite default usable.
	if err := db.AutoMigrate(&models.Scientist{}, &models.Planet{}, &models.Mission{}); err != nil {
		return nil, err
	}

	slog.Info("Connected to the database")
	return db, nil
}
