// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"swim-shop-api/internal/dal"
	catalogmodel "swim-shop-api/internal/model/catalog"
)

// OpenDB returns a migrated in-memory sqlite database private to t.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, dal.Migrate(db))
	return db
}

// SeedProducts inserts a small swimwear catalog.
func SeedProducts(t *testing.T, db *gorm.DB) []catalogmodel.Product {
	t.Helper()
	products := []catalogmodel.Product{
		{ID: 1, Name: "Coral Bikini Set", Price: decimal.RequireFromString("450.00"), Sizes: []string{"S", "M", "L"}, Category: "bikinis", Tags: []string{"coral", "summer"}, Stock: 10},
		{ID: 2, Name: "Midnight One-Piece", Price: decimal.RequireFromString("599.99"), Sizes: []string{"M", "L"}, Category: "one-piece", Tags: []string{"black", "classic"}, Stock: 2},
		{ID: 3, Name: "Beach Sarong", Price: decimal.RequireFromString("120.50"), Sizes: []string{"OS"}, Category: "cover-ups", Tags: []string{"beach"}, Stock: 0},
	}
	require.NoError(t, db.Create(&products).Error)
	return products
}
