//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"scratch-win/internal/domain/prize"
	"scratch-win/internal/handler/api"
	resdto "scratch-win/internal/handler/dto/response"
	"scratch-win/internal/pkg/config"
	"scratch-win/internal/usecase/commands"
	"scratch-win/internal/usecase/queries"
	"scratch-win/tests/common/httptest"
	commandsmock "scratch-win/tests/mock/commands"
	queriesmock "scratch-win/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockEligibility *queriesmock.MockEligibilityQueries
	mockRedemptions *commandsmock.MockRedemptionCommands
	handler         *api.RedemptionHandler
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockEligibility = queriesmock.NewMockEligibilityQueries(s.mockCtrl)
	s.mockRedemptions = commandsmock.NewMockRedemptionCommands(s.mockCtrl)

	table, err := prize.NewTable(prize.DefaultTiers())
	s.Require().NoError(err)

	campaign := config.CampaignConfig{
		MinPurchaseAmount: 500,
		ScratchThreshold:  50,
		StoreName:         "Test Store",
	}
	s.handler = api.NewRedemptionHandler(s.mockEligibility, s.mockRedemptions, campaign, table)

	s.router.POST("/api/validate-order", s.handler.ValidateOrder)
	s.router.POST("/api/scratch", s.handler.Scratch)
	s.router.GET("/api/config", s.handler.GetConfig)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

// ================================================================================
// TestValidateOrder
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestValidateOrder() {
	url := "/api/validate-order"
	reqBody := map[string]any{"orderId": "PRIYA_42", "email": "priya@example.com"}

	s.Run("success: returns valid verdict with order detail", func() {
		s.mockEligibility.EXPECT().ValidateOrder(gomock.Any(), "PRIYA_42", "priya@example.com").
			Return(&queries.ValidationView{
				Valid:          true,
				OrderReference: "PRIYA_42",
				Email:          "priya@example.com",
				Amount:         650,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Require().NotNil(response.Order)
		s.Equal("PRIYA_42", response.Order.OrderReference)
	})

	s.Run("success: invalid verdicts are 200 with a reason", func() {
		testCases := []struct {
			name    string
			reason  queries.Reason
			message string
		}{
			{name: "not found", reason: queries.ReasonNotFound, message: "Order not found"},
			{name: "email mismatch", reason: queries.ReasonEmailMismatch, message: "Email does not match"},
			{name: "below minimum", reason: queries.ReasonBelowMinimum, message: "at least"},
			{name: "already used", reason: queries.ReasonAlreadyUsed, message: "already been used"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockEligibility.EXPECT().ValidateOrder(gomock.Any(), "PRIYA_42", "priya@example.com").
					Return(&queries.ValidationView{Reason: tc.reason, MinimumAmount: 500}, nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				var response resdto.ValidationResponse
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
				s.False(response.Valid)
				s.Equal(string(tc.reason), response.Reason)
				s.Contains(response.Message, tc.message)
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing orderId", body: map[string]any{"email": "priya@example.com"}},
			{name: "missing email", body: map[string]any{"orderId": "PRIYA_42"}},
			{name: "invalid email", body: map[string]any{"orderId": "PRIYA_42", "email": "not-an-email"}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockEligibility.EXPECT().ValidateOrder(gomock.Any(), "PRIYA_42", "priya@example.com").
			Return(nil, queries.ErrValidationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestScratch
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestScratch() {
	url := "/api/scratch"
	playerID := uuid.New()
	reqBody := map[string]any{
		"userId":  playerID.String(),
		"email":   "priya@example.com",
		"orderId": "PRIYA_42",
	}

	s.Run("success: returns the drawn prize", func() {
		s.mockRedemptions.EXPECT().Redeem(gomock.Any(), "PRIYA_42", playerID, "priya@example.com").
			Return(&commands.RedemptionResult{
				PrizeName:    "1 Damru + 3 Hearts",
				PrizeDetails: []prize.Item{{Name: "Damru Candle", Quantity: 1}},
				TierName:     "Gold",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ScratchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.AlreadyPlayed)
		s.Equal("1 Damru + 3 Hearts", response.Prize)
		s.Equal("Gold", response.Tier)
	})

	s.Run("success: replay reports the stored prize", func() {
		s.mockRedemptions.EXPECT().Redeem(gomock.Any(), "PRIYA_42", playerID, "priya@example.com").
			Return(&commands.RedemptionResult{
				AlreadyRedeemed: true,
				PrizeName:       "3 Tealight Candles",
				TierName:        "Bronze",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ScratchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.AlreadyPlayed)
		s.Equal("3 Tealight Candles", response.Prize)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing userId", body: map[string]any{"email": "priya@example.com", "orderId": "PRIYA_42"}},
			{name: "userId not a UUID", body: map[string]any{"userId": "abc", "email": "priya@example.com", "orderId": "PRIYA_42"}},
			{name: "missing orderId", body: map[string]any{"userId": playerID.String(), "email": "priya@example.com"}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "order not found",
				commandsError:  commands.ErrOrderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Order not found",
			},
			{
				name:           "below minimum",
				commandsError:  commands.ErrOrderBelowMinimum,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "minimum purchase",
			},
			{
				name:           "tier configuration",
				commandsError:  commands.ErrTierConfiguration,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Prize configuration error",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRedemptions.EXPECT().Redeem(gomock.Any(), "PRIYA_42", playerID, "priya@example.com").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetConfig
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestGetConfig() {
	s.Run("success: returns campaign settings and tier ranges", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/config", nil, "")

		var response resdto.ConfigResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(500.0, response.MinPurchaseAmount)
		s.Equal(50, response.ScratchThreshold)
		s.Equal("Test Store", response.Store.Name)
		s.Require().Len(response.Tiers, 3)
		s.Equal("Bronze", response.Tiers[0].Name)
		s.Equal(1000.0, response.Tiers[2].MaxAmount)
	})
}
