package database

import (
	"strings"

	"github.com/rmoreira/vision2026-api/internal/config"
	"github.com/rmoreira/vision2026-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database named by the config. PostgreSQL if the URL
// starts with postgres, otherwise SQLite.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Goal{},
		&models.UserStats{},
	)
}
