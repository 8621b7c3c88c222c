package holddto

import "time"

type HoldOutput struct {
	HoldID    int64
	ExpiresAt time.Time
}
