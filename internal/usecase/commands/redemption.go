package commands

import (
	"context"
	"errors"
	"log/slog"

	"scratch-win/internal/domain/play"
	"scratch-win/internal/domain/prize"
	"scratch-win/internal/infra"
	"scratch-win/internal/infra/repository"
	"scratch-win/internal/pkg/clock"
	"scratch-win/internal/pkg/config"
	"scratch-win/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrOrderNotFound           = errs.New("order not found")
	ErrOrderBelowMinimum       = errs.New("order below minimum purchase amount")
	ErrTierConfiguration       = errs.New("prize tier configuration error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// unknownPrize is reported when an order is consumed but its play record
// cannot be read back. The order stays burned either way.
const unknownPrize = "Unknown"

type RedemptionResult struct {
	AlreadyRedeemed bool
	PrizeName       string
	PrizeDetails    []prize.Item
	TierName        string
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, orderReference string, playerID uuid.UUID, email string) (*RedemptionResult, error)
}

type redemptionUseCaseImpl struct {
	orders   OrderRepository
	plays    PlayRepository
	table    prize.Table
	selector PrizeSelector
	campaign config.CampaignConfig
	db       repository.TxBeginner
	clock    clock.Clock
}

func NewRedemptionCommands(
	orders OrderRepository,
	plays PlayRepository,
	table prize.Table,
	selector PrizeSelector,
	campaign config.CampaignConfig,
	db repository.TxBeginner,
	clock clock.Clock,
) RedemptionCommands {
	return &redemptionUseCaseImpl{
		orders:   orders,
		plays:    plays,
		table:    table,
		selector: selector,
		campaign: campaign,
		db:       db,
		clock:    clock,
	}
}

// Redeem burns the order and awards a prize at most once. Replays and
// raced attempts both resolve to the first committed outcome.
func (r *redemptionUseCaseImpl) Redeem(ctx context.Context, orderReference string, playerID uuid.UUID, email string) (*RedemptionResult, error) {
	ord, err := r.orders.FindByReference(ctx, orderReference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if ord.Consumed {
		return r.storedOutcome(ctx, ord.Reference)
	}

	if !ord.MeetsMinimum(r.campaign.MinPurchaseAmount) {
		return nil, errs.Mark(
			errs.Newf("order amount %.2f below minimum %.2f", ord.Amount, r.campaign.MinPurchaseAmount),
			ErrOrderBelowMinimum,
		)
	}

	tier, err := r.table.ResolveTier(ord.Amount)
	if err != nil {
		return nil, errs.Mark(err, ErrTierConfiguration)
	}
	option, err := r.selector.Select(tier)
	if err != nil {
		return nil, errs.Mark(err, ErrTierConfiguration)
	}

	record := play.Play{
		PlayerID:       playerID,
		OrderReference: ord.Reference,
		Email:          playEmail(email, ord.Email),
		PrizeName:      option.Name,
		PrizeDetails:   option.Items,
		TierName:       tier.Name,
		PlayedAt:       r.clock.Now(),
	}

	committed, err := r.commitPlay(ctx, record)
	if err != nil {
		return nil, err
	}
	if !committed {
		// A concurrent attempt on the same order won; its outcome stands.
		return r.storedOutcome(ctx, ord.Reference)
	}

	return &RedemptionResult{
		PrizeName:    option.Name,
		PrizeDetails: option.Items,
		TierName:     tier.Name,
	}, nil
}

// commitPlay inserts the play record and flips the order's consumed flag in
// one transaction. The unique index on the play's order reference is the
// serialization point: false with a nil error means this attempt lost the
// race and nothing was written.
func (r *redemptionUseCaseImpl) commitPlay(ctx context.Context, record play.Play) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback redemption transaction", "error", rollbackErr)
		}
	}()

	if err := r.plays.Create(ctx, tx, record); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return false, nil
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	marked, err := r.orders.MarkConsumed(ctx, tx, record.OrderReference)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !marked {
		// Consumed flag already set without a play record visible to the
		// insert; discard this draw and report the stored state.
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return true, nil
}

func (r *redemptionUseCaseImpl) storedOutcome(ctx context.Context, reference string) (*RedemptionResult, error) {
	p, err := r.plays.FindByOrderReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("order consumed but play record missing", "order_reference", reference)
			return &RedemptionResult{
				AlreadyRedeemed: true,
				PrizeName:       unknownPrize,
				TierName:        unknownPrize,
			}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &RedemptionResult{
		AlreadyRedeemed: true,
		PrizeName:       p.PrizeName,
		PrizeDetails:    p.PrizeDetails,
		TierName:        p.TierName,
	}, nil
}

func playEmail(presented, stored string) string {
	if presented != "" {
		return presented
	}
	return stored
}
