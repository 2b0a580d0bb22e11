package response

import (
	"scratch-win/internal/usecase/commands"
)

type SessionResponse struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	HasPlayed bool   `json:"hasPlayed"`
	Prize     string `json:"prize,omitempty"`
}

func FromSessionResult(r *commands.SessionResult) *SessionResponse {
	return &SessionResponse{
		UserID:    r.PlayerID.String(),
		Email:     r.Email,
		HasPlayed: r.HasPlayed,
		Prize:     r.PrizeName,
	}
}
