//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"scratch-win/internal/domain/order"
	"scratch-win/internal/domain/play"
	"scratch-win/internal/domain/prize"
	"scratch-win/internal/infra"
	"scratch-win/internal/pkg/clock"
	"scratch-win/internal/pkg/config"
	"scratch-win/internal/usecase/commands"
	commandsmock "scratch-win/tests/mock/commands"
	repositorymock "scratch-win/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const minPurchase = 500.0

type RedemptionTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockOrders   *commandsmock.MockOrderRepository
	mockPlays    *commandsmock.MockPlayRepository
	mockSelector *commandsmock.MockPrizeSelector
	mockDB       *repositorymock.MockTxBeginner
	mockTx       *repositorymock.MockTx
	clock        *clock.MockClock
	useCase      commands.RedemptionCommands
}

func (s *RedemptionTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrders = commandsmock.NewMockOrderRepository(s.mockCtrl)
	s.mockPlays = commandsmock.NewMockPlayRepository(s.mockCtrl)
	s.mockSelector = commandsmock.NewMockPrizeSelector(s.mockCtrl)
	s.mockDB = repositorymock.NewMockTxBeginner(s.mockCtrl)
	s.mockTx = repositorymock.NewMockTx(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 10, 20, 12, 0, 0, 0, time.UTC))

	table, err := prize.NewTable(prize.DefaultTiers())
	s.Require().NoError(err)

	s.useCase = commands.NewRedemptionCommands(
		s.mockOrders,
		s.mockPlays,
		table,
		s.mockSelector,
		config.CampaignConfig{MinPurchaseAmount: minPurchase},
		s.mockDB,
		s.clock,
	)
}

func (s *RedemptionTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionSuite(t *testing.T) {
	suite.Run(t, new(RedemptionTestSuite))
}

func (s *RedemptionTestSuite) eligibleOrder() order.Order {
	return order.Order{
		Reference:  "PRIYA_42",
		Email:      "priya@example.com",
		Amount:     650,
		IsEligible: true,
	}
}

func (s *RedemptionTestSuite) goldOption() prize.Option {
	return prize.Option{
		Name:   "1 Damru + 3 Hearts",
		Items:  []prize.Item{{Name: "Damru Candle", Quantity: 1}, {Name: "Heart Tealight Candle", Quantity: 3}},
		Weight: 40,
	}
}

func (s *RedemptionTestSuite) TestRedeemSuccess() {
	ctx := context.Background()
	playerID := uuid.New()
	ord := s.eligibleOrder()
	option := s.goldOption()

	s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)
	s.mockSelector.EXPECT().Select(gomock.Any()).Return(option, nil)
	s.mockDB.EXPECT().Begin(ctx).Return(s.mockTx, nil)
	s.mockPlays.EXPECT().Create(ctx, s.mockTx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, p play.Play) error {
			s.Equal(playerID, p.PlayerID)
			s.Equal("PRIYA_42", p.OrderReference)
			s.Equal(option.Name, p.PrizeName)
			s.Equal("Gold", p.TierName)
			s.Equal(s.clock.Now(), p.PlayedAt)
			return nil
		})
	s.mockOrders.EXPECT().MarkConsumed(ctx, s.mockTx, "PRIYA_42").Return(true, nil)
	s.mockTx.EXPECT().Commit(ctx).Return(nil)
	s.mockTx.EXPECT().Rollback(ctx).Return(pgx.ErrTxClosed)

	result, err := s.useCase.Redeem(ctx, "PRIYA_42", playerID, "priya@example.com")
	s.Require().NoError(err)
	s.False(result.AlreadyRedeemed)
	s.Equal(option.Name, result.PrizeName)
	s.Equal(option.Items, result.PrizeDetails)
	s.Equal("Gold", result.TierName)
}

func (s *RedemptionTestSuite) TestRedeemOrderNotFound() {
	ctx := context.Background()

	s.mockOrders.EXPECT().FindByReference(ctx, "MISSING_01").
		Return(order.Order{}, infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound))
	s.mockSelector.EXPECT().Select(gomock.Any()).Times(0)

	_, err := s.useCase.Redeem(ctx, "MISSING_01", uuid.New(), "a@example.com")
	s.ErrorIs(err, commands.ErrOrderNotFound)
}

func (s *RedemptionTestSuite) TestRedeemBelowMinimumNeverDraws() {
	ctx := context.Background()
	ord := s.eligibleOrder()
	ord.Amount = 499.99
	ord.IsEligible = false

	s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)
	s.mockSelector.EXPECT().Select(gomock.Any()).Times(0)
	s.mockDB.EXPECT().Begin(gomock.Any()).Times(0)

	_, err := s.useCase.Redeem(ctx, "PRIYA_42", uuid.New(), "priya@example.com")
	s.ErrorIs(err, commands.ErrOrderBelowMinimum)
}

func (s *RedemptionTestSuite) TestRedeemExactMinimumQualifies() {
	ctx := context.Background()
	ord := s.eligibleOrder()
	ord.Amount = minPurchase

	s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)
	s.mockSelector.EXPECT().Select(gomock.Any()).Return(s.goldOption(), nil)
	s.mockDB.EXPECT().Begin(ctx).Return(s.mockTx, nil)
	s.mockPlays.EXPECT().Create(ctx, s.mockTx, gomock.Any()).Return(nil)
	s.mockOrders.EXPECT().MarkConsumed(ctx, s.mockTx, "PRIYA_42").Return(true, nil)
	s.mockTx.EXPECT().Commit(ctx).Return(nil)
	s.mockTx.EXPECT().Rollback(ctx).Return(pgx.ErrTxClosed)

	result, err := s.useCase.Redeem(ctx, "PRIYA_42", uuid.New(), "priya@example.com")
	s.Require().NoError(err)
	s.False(result.AlreadyRedeemed)
}

func (s *RedemptionTestSuite) TestRedeemReplayReturnsStoredOutcome() {
	ctx := context.Background()
	ord := s.eligibleOrder()
	ord.Consumed = true

	stored := play.Play{
		OrderReference: "PRIYA_42",
		PrizeName:      "2 Damru + 2 Hearts",
		PrizeDetails:   []prize.Item{{Name: "Damru Candle", Quantity: 2}},
		TierName:       "Gold",
	}

	s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)
	s.mockPlays.EXPECT().FindByOrderReference(ctx, "PRIYA_42").Return(stored, nil)
	s.mockSelector.EXPECT().Select(gomock.Any()).Times(0)
	s.mockDB.EXPECT().Begin(gomock.Any()).Times(0)

	result, err := s.useCase.Redeem(ctx, "PRIYA_42", uuid.New(), "priya@example.com")
	s.Require().NoError(err)
	s.True(result.AlreadyRedeemed)
	s.Equal(stored.PrizeName, result.PrizeName)
	s.Equal(stored.PrizeDetails, result.PrizeDetails)
	s.Equal(stored.TierName, result.TierName)
}

func (s *RedemptionTestSuite) TestRedeemConsumedWithoutPlayDegradesToUnknown() {
	ctx := context.Background()
	ord := s.eligibleOrder()
	ord.Consumed = true

	s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)
	s.mockPlays.EXPECT().FindByOrderReference(ctx, "PRIYA_42").
		Return(play.Play{}, infra.WrapRepoErr("play not found", pgx.ErrNoRows, infra.KindNotFound))

	result, err := s.useCase.Redeem(ctx, "PRIYA_42", uuid.New(), "priya@example.com")
	s.Require().NoError(err)
	s.True(result.AlreadyRedeemed)
	s.Equal("Unknown", result.PrizeName)
	s.Empty(result.PrizeDetails)
}

func (s *RedemptionTestSuite) TestRedeemLostRaceFallsBackToWinner() {
	ctx := context.Background()
	ord := s.eligibleOrder()

	winner := play.Play{
		OrderReference: "PRIYA_42",
		PrizeName:      "1 Damru + 4 Hearts",
		TierName:       "Gold",
	}

	s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)
	s.mockSelector.EXPECT().Select(gomock.Any()).Return(s.goldOption(), nil)
	s.mockDB.EXPECT().Begin(ctx).Return(s.mockTx, nil)
	s.mockPlays.EXPECT().Create(ctx, s.mockTx, gomock.Any()).
		Return(infra.WrapRepoErr("play already exists for order", errors.New("duplicate key"), infra.KindDuplicateKey))
	s.mockTx.EXPECT().Rollback(ctx).Return(nil)
	s.mockPlays.EXPECT().FindByOrderReference(ctx, "PRIYA_42").Return(winner, nil)
	s.mockOrders.EXPECT().MarkConsumed(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockTx.EXPECT().Commit(gomock.Any()).Times(0)

	result, err := s.useCase.Redeem(ctx, "PRIYA_42", uuid.New(), "priya@example.com")
	s.Require().NoError(err)
	s.True(result.AlreadyRedeemed)
	s.Equal(winner.PrizeName, result.PrizeName)
}

func (s *RedemptionTestSuite) TestRedeemMarkConsumedRaceDiscardsDraw() {
	ctx := context.Background()
	ord := s.eligibleOrder()

	stored := play.Play{OrderReference: "PRIYA_42", PrizeName: "1 Damru + 3 Hearts", TierName: "Gold"}

	s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)
	s.mockSelector.EXPECT().Select(gomock.Any()).Return(s.goldOption(), nil)
	s.mockDB.EXPECT().Begin(ctx).Return(s.mockTx, nil)
	s.mockPlays.EXPECT().Create(ctx, s.mockTx, gomock.Any()).Return(nil)
	s.mockOrders.EXPECT().MarkConsumed(ctx, s.mockTx, "PRIYA_42").Return(false, nil)
	s.mockTx.EXPECT().Rollback(ctx).Return(nil)
	s.mockPlays.EXPECT().FindByOrderReference(ctx, "PRIYA_42").Return(stored, nil)
	s.mockTx.EXPECT().Commit(gomock.Any()).Times(0)

	result, err := s.useCase.Redeem(ctx, "PRIYA_42", uuid.New(), "priya@example.com")
	s.Require().NoError(err)
	s.True(result.AlreadyRedeemed)
	s.Equal(stored.PrizeName, result.PrizeName)
}

func (s *RedemptionTestSuite) TestRedeemCommitFailure() {
	ctx := context.Background()
	ord := s.eligibleOrder()

	s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)
	s.mockSelector.EXPECT().Select(gomock.Any()).Return(s.goldOption(), nil)
	s.mockDB.EXPECT().Begin(ctx).Return(s.mockTx, nil)
	s.mockPlays.EXPECT().Create(ctx, s.mockTx, gomock.Any()).Return(nil)
	s.mockOrders.EXPECT().MarkConsumed(ctx, s.mockTx, "PRIYA_42").Return(true, nil)
	s.mockTx.EXPECT().Commit(ctx).Return(errors.New("connection reset"))
	s.mockTx.EXPECT().Rollback(ctx).Return(nil)

	_, err := s.useCase.Redeem(ctx, "PRIYA_42", uuid.New(), "priya@example.com")
	s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
}

func (s *RedemptionTestSuite) TestRedeemLookupFailure() {
	ctx := context.Background()

	s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").
		Return(order.Order{}, infra.WrapRepoErr("failed to find order", errors.New("connection refused")))

	_, err := s.useCase.Redeem(ctx, "PRIYA_42", uuid.New(), "priya@example.com")
	s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
}
