package testutil

import (
	"testing"

	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a fresh in-memory database with the checkout schema applied.
// The pool is pinned to one connection: every goroutine in the test shares
// the same memory database, and contended writes serialize instead of each
// connection getting its own empty ":memory:" instance.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.ProductModel{},
		&models.HoldModel{},
		&models.OrderModel{},
		&models.WebhookLogModel{},
	))
	return db
}
