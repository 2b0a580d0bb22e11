package api

import (
	"errors"
	"net/http"

	"scratch-win/internal/domain/prize"
	reqdto "scratch-win/internal/handler/dto/request"
	resdto "scratch-win/internal/handler/dto/response"
	"scratch-win/internal/handler/httperr"
	"scratch-win/internal/pkg/config"
	"scratch-win/internal/usecase/commands"
	"scratch-win/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RedemptionHandler struct {
	eligibility queries.EligibilityQueries
	redemptions commands.RedemptionCommands
	campaign    config.CampaignConfig
	table       prize.Table
}

func NewRedemptionHandler(
	eligibility queries.EligibilityQueries,
	redemptions commands.RedemptionCommands,
	campaign config.CampaignConfig,
	table prize.Table,
) *RedemptionHandler {
	return &RedemptionHandler{
		eligibility: eligibility,
		redemptions: redemptions,
		campaign:    campaign,
		table:       table,
	}
}

func (h *RedemptionHandler) ValidateOrder(c *gin.Context) {
	var req reqdto.ValidateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.eligibility.ValidateOrder(c.Request.Context(), req.OrderReference, req.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidationView(view))
}

func (h *RedemptionHandler) Scratch(c *gin.Context) {
	var req reqdto.ScratchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	playerID, err := uuid.Parse(req.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID format")
		return
	}

	result, err := h.redemptions.Redeem(c.Request.Context(), req.OrderReference, playerID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, commands.ErrOrderBelowMinimum):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order does not meet the minimum purchase amount")
		case errors.Is(err, commands.ErrTierConfiguration):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Prize configuration error")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedemptionResult(result))
}

func (h *RedemptionHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCampaign(h.campaign, h.table))
}
