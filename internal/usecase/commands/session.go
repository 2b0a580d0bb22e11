package commands

import (
	"context"
	"strings"

	"scratch-win/internal/domain/player"
	"scratch-win/internal/infra"
	"scratch-win/internal/pkg/errs"

	"github.com/google/uuid"
)

type SessionResult struct {
	PlayerID  uuid.UUID
	Email     string
	HasPlayed bool
	PrizeName string
}

type SessionCommands interface {
	// Resolve folds a client-presented identity onto the stored one. The
	// email is authoritative: a player record already holding this email
	// wins over whatever ID the client presents.
	Resolve(ctx context.Context, presentedID uuid.UUID, email string) (*SessionResult, error)
}

type sessionUseCaseImpl struct {
	players PlayerRepository
	plays   PlayRepository
}

func NewSessionCommands(players PlayerRepository, plays PlayRepository) SessionCommands {
	return &sessionUseCaseImpl{players: players, plays: plays}
}

func (u *sessionUseCaseImpl) Resolve(ctx context.Context, presentedID uuid.UUID, email string) (*SessionResult, error) {
	playerID, err := u.resolvePlayerID(ctx, presentedID, email)
	if err != nil {
		return nil, err
	}

	result := &SessionResult{
		PlayerID: playerID,
		Email:    strings.ToLower(email),
	}

	p, err := u.plays.FindByPlayerID(ctx, playerID)
	switch {
	case err == nil:
		result.HasPlayed = true
		result.PrizeName = p.PrizeName
	case infra.IsKind(err, infra.KindNotFound):
		// first visit, nothing played yet
	default:
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return result, nil
}

func (u *sessionUseCaseImpl) resolvePlayerID(ctx context.Context, presentedID uuid.UUID, email string) (uuid.UUID, error) {
	existing, err := u.players.FindByEmail(ctx, email)
	if err == nil {
		return existing.PlayerID, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	playerID := presentedID
	if playerID == uuid.Nil {
		playerID = uuid.New()
	}
	if err := u.players.Create(ctx, player.New(playerID, email)); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost a first-contact race on the email; use the winner's ID.
			winner, findErr := u.players.FindByEmail(ctx, email)
			if findErr != nil {
				return uuid.Nil, errs.Mark(findErr, ErrDatabaseOperationFailed)
			}
			return winner.PlayerID, nil
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return playerID, nil
}
