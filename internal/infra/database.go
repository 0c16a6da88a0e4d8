package infra

import (
	"fmt"

	"tienda/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates the schema. Shared with integration tests,
// which run it against a throwaway container database.
func RunMigrations(db *gorm.DB) error {
	// Order matters: referenced tables before the ones holding the FKs.
	return db.AutoMigrate(
		&model.Persona{},
		&model.Producto{},
		&model.Ubicacion{},
		&model.PuntoDeVenta{},
		&model.Venta{},
		&model.VentaDetalle{},
	)
}
