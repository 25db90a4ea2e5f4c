package database

import (
	"errors"
	"fmt"
	"log"

	"expenses/config"
	"expenses/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the sqlite store, migrates the schema and seeds the default
// categories. It must run before any request is served.
func Init(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// sqlite allows a single writer; one pooled connection avoids
	// SQLITE_BUSY under concurrent mutations.
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	// Expense and budget rows reference categories by id.
	if err := DB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return err
	}

	if err := DB.AutoMigrate(
		&models.Category{},
		&models.Expense{},
		&models.Budget{},
	); err != nil {
		return err
	}

	if err := SeedDefaultCategories(DB); err != nil {
		return err
	}

	log.Println("database initialized")
	return nil
}

// SeedDefaultCategories inserts each default category only if no category
// with that id exists yet. Re-running never duplicates rows and never
// overwrites fields of an already-present category, even a user-edited one.
func SeedDefaultCategories(db *gorm.DB) error {
	for _, cat := range models.DefaultCategories() {
		var existing models.Category
		err := db.First(&existing, "id = ?", cat.ID).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetDB returns the database handle.
func GetDB() *gorm.DB {
	return DB
}
