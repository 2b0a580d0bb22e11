//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"scratch-win/internal/domain/product"
	"scratch-win/internal/handler/api"
	resdto "scratch-win/internal/handler/dto/response"
	"scratch-win/internal/handler/middleware"
	"scratch-win/internal/pkg/jwt"
	"scratch-win/internal/usecase/commands"
	"scratch-win/tests/common/httptest"
	commandsmock "scratch-win/tests/mock/commands"
	queriesmock "scratch-win/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockAuth     *commandsmock.MockAuthCommands
	mockOrders   *commandsmock.MockOrderCommands
	mockCatalog  *commandsmock.MockCatalogCommands
	mockOrderQ   *queriesmock.MockOrderQueries
	mockProductQ *queriesmock.MockProductQueries
	tokens       *jwt.Service
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockOrders = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockCatalog = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockOrderQ = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.mockProductQ = queriesmock.NewMockProductQueries(s.mockCtrl)

	s.tokens = jwt.NewService("test-secret", time.Hour)
	authMiddleware := middleware.NewAuthMiddleware(s.tokens)

	handler := api.NewAdminHandler(
		s.mockAuth, s.mockOrders, s.mockCatalog, s.mockOrderQ, s.mockProductQ, authMiddleware,
	)

	admin := s.router.Group("/api/admin")
	admin.POST("/login", handler.Login)
	admin.GET("/check", handler.Check)

	protected := admin.Group("", authMiddleware.RequireAdmin())
	protected.GET("/products", handler.ListProducts)
	protected.POST("/products", handler.AddProduct)
	protected.POST("/orders/direct", handler.CreateDirectOrder)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) adminToken() string {
	token, err := s.tokens.GenerateAdminToken()
	s.Require().NoError(err)
	return token
}

func (s *AdminHandlerTestSuite) TestLogin() {
	url := "/api/admin/login"

	s.Run("success: returns a token", func() {
		s.mockAuth.EXPECT().Login("letmein").Return("signed-token", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"password": "letmein"}, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-token", response.Token)
	})

	s.Run("error: 401 Unauthorized on wrong password", func() {
		s.mockAuth.EXPECT().Login("wrong").Return("", commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"password": "wrong"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials")
	})

	s.Run("error: 400 Bad Request on missing password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestCheck() {
	url := "/api/admin/check"

	s.Run("reports authenticated with a valid token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.adminToken())

		var response struct {
			IsAuthenticated bool `json:"isAuthenticated"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsAuthenticated)
	})

	s.Run("reports unauthenticated without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response struct {
			IsAuthenticated bool `json:"isAuthenticated"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsAuthenticated)
	})
}

func (s *AdminHandlerTestSuite) TestRequireAdmin() {
	url := "/api/admin/products"

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 Unauthorized with a garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 401 Unauthorized with a token from another secret", func() {
		forged, err := jwt.NewService("other-secret", time.Hour).GenerateAdminToken()
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, forged)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("success: valid token reaches the handler", func() {
		s.mockProductQ.EXPECT().ListProducts(gomock.Any()).
			Return([]product.Product{
				{ID: 3, Name: "Clay Diya Set", Price: 150, Category: "Diyas", InStock: true},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.adminToken())

		var response []*resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Clay Diya Set", response[0].Name)
	})
}

func (s *AdminHandlerTestSuite) TestAddProduct() {
	url := "/api/admin/products"
	reqBody := map[string]any{"name": "Brass Bell", "price": 320.0, "category": "Pooja"}

	s.Run("success: 201 Created with the stored product", func() {
		s.mockCatalog.EXPECT().AddProduct(gomock.Any(), "Brass Bell", 320.0, "Pooja").
			Return(product.Product{ID: 11, Name: "Brass Bell", Price: 320, Category: "Pooja", InStock: true}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.adminToken())

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(11), response.ID)
		s.True(response.InStock)
	})

	s.Run("error: 409 Conflict on a duplicate name", func() {
		s.mockCatalog.EXPECT().AddProduct(gomock.Any(), "Brass Bell", 320.0, "Pooja").
			Return(product.Product{}, commands.ErrProductNameTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Product name already exists")
	})
}

func (s *AdminHandlerTestSuite) TestCreateDirectOrder() {
	url := "/api/admin/orders/direct"
	reqBody := map[string]any{"email": "priya@example.com", "amount": 650.0}

	s.Run("success: 201 Created with the eligibility verdict", func() {
		s.mockOrders.EXPECT().CreateWithAmount(gomock.Any(), "priya@example.com", 650.0, gomock.Nil()).
			Return(&commands.CreatedOrder{
				Reference:  "PRIYA_42",
				Email:      "priya@example.com",
				Amount:     650,
				IsEligible: true,
				TierName:   "Gold",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.adminToken())

		var response resdto.CreatedOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("PRIYA_42", response.OrderReference)
		s.True(response.IsEligible)
		s.Equal("Gold", response.Tier)
	})

	s.Run("error: maps order creation failures", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "email domain not allowed",
				commandsError:  commands.ErrEmailDomainNotAllowed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Email domain not allowed",
			},
			{
				name:           "reference exhausted",
				commandsError:  commands.ErrReferenceExhausted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "unique order reference",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockOrders.EXPECT().CreateWithAmount(gomock.Any(), "priya@example.com", 650.0, gomock.Nil()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.adminToken())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request on a non-positive amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"email": "priya@example.com", "amount": 0}, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
