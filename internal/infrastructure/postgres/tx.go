package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type txKey struct{}

// WithTx returns a ctx carrying tx; repository calls made with it join the
// transaction instead of opening their own connection.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxOrDB returns the transaction smuggled in ctx, falling back to db.
func TxOrDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db
}

const maxTxAttempts = 3

type GormTxManager struct {
	db *gorm.DB
}

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// Do runs fn inside one transaction. A fn already running inside a
// transaction joins it; otherwise a new one is opened and retried a bounded
// number of times on deadlock or serialization failure.
func (m *GormTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(WithTx(ctx, tx))
		})
		if err == nil || !isRetryableTxError(err) {
			return err
		}
	}
	return err
}

// isRetryableTxError matches serialization_failure (40001) and
// deadlock_detected (40P01), the two contention classes safe to re-run.
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
