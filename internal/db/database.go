package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/studymate/courseapi/internal/config"
)

// Database is an open store connection. Exactly one of Postgres or Gorm is set,
// depending on the configured driver.
type Database struct {
	Driver   string
	Postgres *PostgresDB
	Gorm     *gorm.DB
}

// Open connects to the store selected by cfg.Database.Driver
func Open(cfg *config.Config) (*Database, error) {
	if cfg.Database.Driver == config.DriverPostgres {
		pg, err := NewPostgresDB(cfg)
		if err != nil {
			return nil, err
		}
		return &Database{Driver: cfg.Database.Driver, Postgres: pg}, nil
	}

	gdb, err := NewGormDB(cfg)
	if err != nil {
		return nil, err
	}
	return &Database{Driver: cfg.Database.Driver, Gorm: gdb}, nil
}

// Close releases the underlying pool
func (d *Database) Close() error {
	if d == nil {
		return nil
	}
	if d.Postgres != nil {
		d.Postgres.Close()
	}
	if d.Gorm != nil {
		sqlDB, err := d.Gorm.DB()
		if err != nil {
			return fmt.Errorf("failed to get database instance: %w", err)
		}
		return sqlDB.Close()
	}
	return nil
}
