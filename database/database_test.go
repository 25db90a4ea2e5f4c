package database

import (
	"testing"

	"expenses/config"
	"expenses/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Expense{}, &models.Budget{}))
	return db
}

func TestSeedDefaultCategories_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedDefaultCategories(db))
	require.NoError(t, SeedDefaultCategories(db))

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(8), count)
}

func TestSeedDefaultCategories_KeepsUserEdits(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedDefaultCategories(db))

	// A user renames a default category; re-seeding must not revert it.
	require.NoError(t, db.Model(&models.Category{ID: "transport"}).Update("name", "Mobilité").Error)
	require.NoError(t, SeedDefaultCategories(db))

	var cat models.Category
	require.NoError(t, db.First(&cat, "id = ?", "transport").Error)
	assert.Equal(t, "Mobilité", cat.Name)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(8), count)
}

func TestSeedDefaultCategories_KeepsUserCategories(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedDefaultCategories(db))

	require.NoError(t, db.Create(&models.Category{
		ID: "abonnements", Name: "Abonnements", Color: "#8E44AD", Icon: "📺",
	}).Error)
	require.NoError(t, SeedDefaultCategories(db))

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(9), count)
}

func TestInit(t *testing.T) {
	oldDB := DB
	defer func() { DB = oldDB }()

	cfg := &config.Config{}
	cfg.Database.Path = ":memory:"
	require.NoError(t, Init(cfg))
	require.NotNil(t, DB)

	var count int64
	DB.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(8), count)
}
