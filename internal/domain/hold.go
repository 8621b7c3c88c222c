package domain

import "time"

type HoldStatus string

const (
	HoldStatusActive  HoldStatus = "active"
	HoldStatusUsed    HoldStatus = "used"
	HoldStatusExpired HoldStatus = "expired"
)

// Hold reserves quantity units of a product until ExpiresAt. The units are
// already debited from Product.Stock while the hold is active; used and
// expired are terminal.
type Hold struct {
	ID        int64
	ProductID int64
	Quantity  int
	Status    HoldStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}

// ExpiredAt reports whether the hold's deadline has passed at the given
// instant. The boundary counts as expired.
func (h *Hold) ExpiredAt(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}
