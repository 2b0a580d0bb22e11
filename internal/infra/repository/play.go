package repository

import (
	"context"
	"encoding/json"
	"errors"

	"scratch-win/internal/domain/play"
	"scratch-win/internal/domain/prize"
	"scratch-win/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PlayRepository struct {
	db DBTX
}

func NewPlayRepository(db DBTX) *PlayRepository {
	return &PlayRepository{db: db}
}

const playColumns = "player_id, order_reference, email, prize_name, prize_details, tier_name, played_at"

// Create inserts the one permanent play for an order. The unique index on
// lower(order_reference) turns a concurrent second draw into
// KindDuplicateKey at commit time.
func (r *PlayRepository) Create(ctx context.Context, db DBTX, p play.Play) error {
	prizeDetails, err := json.Marshal(p.PrizeDetails)
	if err != nil {
		return infra.WrapRepoErr("failed to encode prize details", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO plays (player_id, order_reference, email, prize_name, prize_details, tier_name, played_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.PlayerID, p.OrderReference, p.Email, p.PrizeName, prizeDetails, p.TierName, p.PlayedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("play already recorded for order", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("play references unknown player or order", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create play", err)
	}
	return nil
}

func (r *PlayRepository) FindByOrderReference(ctx context.Context, reference string) (play.Play, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+playColumns+" FROM plays WHERE lower(order_reference) = lower($1)",
		reference,
	)

	p, err := scanPlay(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return play.Play{}, infra.WrapRepoErr("play not found", err, infra.KindNotFound)
		}
		return play.Play{}, infra.WrapRepoErr("failed to find play by order reference", err)
	}
	return p, nil
}

func (r *PlayRepository) FindByPlayerID(ctx context.Context, playerID uuid.UUID) (play.Play, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+playColumns+" FROM plays WHERE player_id = $1 ORDER BY played_at LIMIT 1",
		playerID,
	)

	p, err := scanPlay(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return play.Play{}, infra.WrapRepoErr("play not found", err, infra.KindNotFound)
		}
		return play.Play{}, infra.WrapRepoErr("failed to find play by player", err)
	}
	return p, nil
}

func scanPlay(row pgx.Row) (play.Play, error) {
	var (
		p            play.Play
		prizeDetails []byte
	)
	err := row.Scan(&p.PlayerID, &p.OrderReference, &p.Email, &p.PrizeName, &prizeDetails, &p.TierName, &p.PlayedAt)
	if err != nil {
		return play.Play{}, err
	}
	if len(prizeDetails) > 0 {
		var items []prize.Item
		if err := json.Unmarshal(prizeDetails, &items); err != nil {
			return play.Play{}, err
		}
		p.PrizeDetails = items
	}
	return p, nil
}
