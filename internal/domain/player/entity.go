package player

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Player is a stable identity created on first contact. Email is the fold
// key: a returning purchaser resolves to the same PlayerID regardless of
// the identifier their client presents.
type Player struct {
	PlayerID  uuid.UUID
	Email     string
	CreatedAt time.Time
}

func New(playerID uuid.UUID, email string) Player {
	return Player{
		PlayerID: playerID,
		Email:    strings.ToLower(email),
	}
}
