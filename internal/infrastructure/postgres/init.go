package postgres

import (
	"log"

	"github.com/flashmart/checkout-service/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MustInitDB opens the checkout database. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func MustInitDB(cfg *config.CheckoutConfig) *gorm.DB {
	dsn := cfg.CheckoutDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	return db
}
