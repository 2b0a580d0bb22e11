package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "scratch-win/internal/handler/dto/request"
	resdto "scratch-win/internal/handler/dto/response"
	"scratch-win/internal/handler/httperr"
	"scratch-win/internal/handler/middleware"
	"scratch-win/internal/usecase/commands"
	"scratch-win/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	auth           commands.AuthCommands
	orders         commands.OrderCommands
	catalog        commands.CatalogCommands
	orderQueries   queries.OrderQueries
	productQueries queries.ProductQueries
	authMiddleware *middleware.AuthMiddleware
}

func NewAdminHandler(
	auth commands.AuthCommands,
	orders commands.OrderCommands,
	catalog commands.CatalogCommands,
	orderQueries queries.OrderQueries,
	productQueries queries.ProductQueries,
	authMiddleware *middleware.AuthMiddleware,
) *AdminHandler {
	return &AdminHandler{
		auth:           auth,
		orders:         orders,
		catalog:        catalog,
		orderQueries:   orderQueries,
		productQueries: productQueries,
		authMiddleware: authMiddleware,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{Token: token})
}

// Logout is a no-op on the server; tokens are stateless and expire on
// their own. The endpoint exists so clients have a uniform auth surface.
func (h *AdminHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": h.authMiddleware.IsAuthenticated(c),
	})
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.productQueries.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(products))
}

func (h *AdminHandler) AddProduct(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	p, err := h.catalog.AddProduct(c.Request.Context(), req.Name, req.Price, req.Category)
	if err != nil {
		if errors.Is(err, commands.ErrProductNameTaken) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Product name already exists")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromProduct(p))
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format")
		return
	}

	var req reqdto.UpdateProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	p, err := h.catalog.UpdateProduct(c.Request.Context(), id, commands.ProductPatch{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		InStock:  req.InStock,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
		case errors.Is(err, commands.ErrProductNameTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Product name already exists")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProduct(p))
}

func (h *AdminHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	lines := make([]commands.CatalogLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = commands.CatalogLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	created, err := h.orders.CreateFromCatalog(c.Request.Context(), req.Email, lines)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreatedOrder(created))
}

func (h *AdminHandler) CreateDirectOrder(c *gin.Context) {
	var req reqdto.CreateDirectOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	created, err := h.orders.CreateWithAmount(c.Request.Context(), req.Email, req.Amount, req.ToLineItems())
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreatedOrder(created))
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	limit := int32(0)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit format")
			return
		}
		limit = int32(parsed)
	}

	views, err := h.orderQueries.RecentOrders(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	out := make([]*resdto.OrderResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromOrderView(v)
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEmailDomainNotAllowed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email domain not allowed")
	case errors.Is(err, commands.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
	case errors.Is(err, commands.ErrProductOutOfStock):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Product is out of stock")
	case errors.Is(err, commands.ErrReferenceExhausted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Could not allocate a unique order reference")
	case errors.Is(err, commands.ErrDuplicateReference):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order reference already exists")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
