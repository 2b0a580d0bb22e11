package api

import (
	"net/http"

	resdto "scratch-win/internal/handler/dto/response"
	"scratch-win/internal/handler/httperr"
	"scratch-win/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	stats queries.StatsQueries
}

func NewStatsHandler(stats queries.StatsQueries) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) GetPlayStats(c *gin.Context) {
	view, err := h.stats.PlayStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlayStats(view))
}

func (h *StatsHandler) GetSalesStats(c *gin.Context) {
	view, err := h.stats.SalesStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSalesStats(view))
}
