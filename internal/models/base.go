package models

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Database connection instance
var DB *gorm.DB

// InitDB opens the SQLite data file and ensures the schema exists.
// Safe to run on every process start; AutoMigrate is idempotent.
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	var err error

	DB, err = gorm.Open(sqlite.Open(config.Path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = DB.AutoMigrate(
		&User{},
		&Patient{},
		&Test{},
	)
	if err != nil {
		return nil, err
	}

	return DB, nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	// Path is the location of the SQLite file, e.g. "hospital.db".
	Path string
}
