package api

import (
	"net/http"

	reqdto "scratch-win/internal/handler/dto/request"
	resdto "scratch-win/internal/handler/dto/response"
	"scratch-win/internal/handler/httperr"
	"scratch-win/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessions commands.SessionCommands
}

func NewSessionHandler(sessions commands.SessionCommands) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) Resolve(c *gin.Context) {
	var req reqdto.SessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	presentedID := uuid.Nil
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID format")
			return
		}
		presentedID = id
	}

	result, err := h.sessions.Resolve(c.Request.Context(), presentedID, req.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionResult(result))
}
