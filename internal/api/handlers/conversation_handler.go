package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/medassist/internal/models"
	"github.com/yoockh/medassist/internal/services"
)

type ConversationHandler struct {
	svc services.ConversationService
}

func NewConversationHandler(svc services.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

type ConversationListResponse struct {
	SessionID string           `json:"session_id"`
	Messages  []models.Message `json:"messages"`
}

// List returns the caller's own log; there is no way to read another session.
func (h *ConversationHandler) List(c *gin.Context) {
	sid := sessionID(c)

	limit := 50
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	rows, err := h.svc.List(c.Request.Context(), sid, limit)
	if err != nil {
		_ = c.Error(err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ConversationListResponse{
		SessionID: sid,
		Messages:  rows,
	})
}
