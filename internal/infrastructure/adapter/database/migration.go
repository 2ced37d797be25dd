package database

import (
	"gorm.io/gorm"

	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/model"
)

// Migrator creates the schema idempotently at startup
type Migrator struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrator creates a new Migrator
func NewMigrator(db *gorm.DB, logger coreport.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// MigrateAll creates the users and purchases tables if they don't exist
func (m *Migrator) MigrateAll() error {
	m.logger.Info("Running database migrations", nil)

	if err := m.db.AutoMigrate(&model.User{}, &model.Purchase{}); err != nil {
		m.logger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations complete", nil)
	return nil
}
