package play

import (
	"time"

	"scratch-win/internal/domain/prize"

	"github.com/google/uuid"
)

// Play is the permanent record of one redemption: prize, details and tier
// are captured at draw time and never re-derived.
type Play struct {
	PlayerID       uuid.UUID
	OrderReference string
	Email          string
	PrizeName      string
	PrizeDetails   []prize.Item
	TierName       string
	PlayedAt       time.Time
}
