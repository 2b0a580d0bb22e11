//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"scratch-win/internal/domain/order"
	"scratch-win/internal/infra"
	"scratch-win/internal/pkg/config"
	"scratch-win/internal/usecase/queries"
	queriesmock "scratch-win/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EligibilityTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockOrders *queriesmock.MockOrderReadStore
	useCase    queries.EligibilityQueries
}

func (s *EligibilityTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrders = queriesmock.NewMockOrderReadStore(s.mockCtrl)
	s.useCase = queries.NewEligibilityQueries(s.mockOrders, config.CampaignConfig{MinPurchaseAmount: 500})
}

func (s *EligibilityTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEligibilitySuite(t *testing.T) {
	suite.Run(t, new(EligibilityTestSuite))
}

func (s *EligibilityTestSuite) storedOrder() order.Order {
	return order.Order{
		Reference:  "PRIYA_42",
		Email:      "priya@example.com",
		Amount:     650,
		IsEligible: true,
	}
}

func (s *EligibilityTestSuite) TestValidateOrder() {
	ctx := context.Background()

	s.Run("valid order passes the gate", func() {
		s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(s.storedOrder(), nil)

		view, err := s.useCase.ValidateOrder(ctx, "PRIYA_42", "priya@example.com")
		s.Require().NoError(err)
		s.True(view.Valid)
		s.Empty(view.Reason)
		s.Equal("PRIYA_42", view.OrderReference)
	})

	s.Run("email comparison is case-insensitive", func() {
		s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(s.storedOrder(), nil)

		view, err := s.useCase.ValidateOrder(ctx, "PRIYA_42", "PRIYA@Example.COM")
		s.Require().NoError(err)
		s.True(view.Valid)
	})

	s.Run("missing order", func() {
		s.mockOrders.EXPECT().FindByReference(ctx, "NOPE_01").
			Return(order.Order{}, infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound))

		view, err := s.useCase.ValidateOrder(ctx, "NOPE_01", "priya@example.com")
		s.Require().NoError(err)
		s.False(view.Valid)
		s.Equal(queries.ReasonNotFound, view.Reason)
	})

	s.Run("email mismatch outranks other rejections", func() {
		ord := s.storedOrder()
		ord.Amount = 100
		ord.Consumed = true
		s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)

		view, err := s.useCase.ValidateOrder(ctx, "PRIYA_42", "other@example.com")
		s.Require().NoError(err)
		s.Equal(queries.ReasonEmailMismatch, view.Reason)
	})

	s.Run("below minimum outranks already used", func() {
		ord := s.storedOrder()
		ord.Amount = 499.99
		ord.Consumed = true
		s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)

		view, err := s.useCase.ValidateOrder(ctx, "PRIYA_42", "priya@example.com")
		s.Require().NoError(err)
		s.Equal(queries.ReasonBelowMinimum, view.Reason)
	})

	s.Run("exact minimum amount is accepted", func() {
		ord := s.storedOrder()
		ord.Amount = 500
		s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)

		view, err := s.useCase.ValidateOrder(ctx, "PRIYA_42", "priya@example.com")
		s.Require().NoError(err)
		s.True(view.Valid)
	})

	s.Run("consumed order reports already used", func() {
		ord := s.storedOrder()
		ord.Consumed = true
		s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").Return(ord, nil)

		view, err := s.useCase.ValidateOrder(ctx, "PRIYA_42", "priya@example.com")
		s.Require().NoError(err)
		s.False(view.Valid)
		s.Equal(queries.ReasonAlreadyUsed, view.Reason)
	})

	s.Run("store failure surfaces as an error", func() {
		s.mockOrders.EXPECT().FindByReference(ctx, "PRIYA_42").
			Return(order.Order{}, infra.WrapRepoErr("failed to find order", errors.New("connection refused")))

		_, err := s.useCase.ValidateOrder(ctx, "PRIYA_42", "priya@example.com")
		s.ErrorIs(err, queries.ErrValidationFailed)
	})
}
