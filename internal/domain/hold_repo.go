package domain

import (
	"context"
	"time"
)

type HoldRepository interface {
	CreateHold(ctx context.Context, hold *Hold) (int64, error)
	GetHoldByID(ctx context.Context, holdID int64) (*Hold, error)

	// MarkHoldUsed flips an active hold to used and reports false when the
	// hold was no longer active.
	MarkHoldUsed(ctx context.Context, holdID int64) (bool, error)

	// MarkHoldExpired flips an active hold to expired, but only when its
	// deadline has passed by now. Reports false when nothing changed.
	MarkHoldExpired(ctx context.Context, holdID int64, now time.Time) (bool, error)

	// FindExpiredHolds returns holds still active whose deadline passed.
	FindExpiredHolds(ctx context.Context, now time.Time) ([]*Hold, error)
}
