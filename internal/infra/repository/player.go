package repository

import (
	"context"
	"errors"

	"scratch-win/internal/domain/player"
	"scratch-win/internal/infra"

	"github.com/jackc/pgx/v5"
)

type PlayerRepository struct {
	db DBTX
}

func NewPlayerRepository(db DBTX) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) FindByEmail(ctx context.Context, email string) (player.Player, error) {
	var p player.Player
	err := r.db.QueryRow(ctx,
		"SELECT player_id, email, created_at FROM players WHERE email = lower($1)",
		email,
	).Scan(&p.PlayerID, &p.Email, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return player.Player{}, infra.WrapRepoErr("player not found", err, infra.KindNotFound)
		}
		return player.Player{}, infra.WrapRepoErr("failed to find player by email", err)
	}
	return p, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO players (player_id, email) VALUES ($1, $2)",
		p.PlayerID, p.Email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("player already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create player", err)
	}
	return nil
}
