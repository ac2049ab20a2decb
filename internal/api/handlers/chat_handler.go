package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/medassist/internal/api/middleware"
	"github.com/yoockh/medassist/internal/services"
	"github.com/yoockh/medassist/internal/utils"
)

type ChatHandler struct {
	chat   services.ChatService
	convos services.ConversationService
}

func NewChatHandler(chat services.ChatService, convos services.ConversationService) *ChatHandler {
	return &ChatHandler{chat: chat, convos: convos}
}

type SendMessageRequest struct {
	Message string `json:"message"`
}

type SendMessageResponse struct {
	Response string `json:"response"`
}

// Index seeds the caller's log with the welcome messages and renders it.
func (h *ChatHandler) Index(c *gin.Context) {
	msgs, err := h.convos.Welcome(c.Request.Context(), sessionID(c))
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Error":     services.MsgInternalFailed,
			"RequestID": c.GetString(middleware.RequestIDKey),
		})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Messages": msgs})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.SendMessage", services.MsgRequired, err))
		return
	}

	reply, err := h.chat.Send(c.Request.Context(), sessionID(c), req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SendMessageResponse{Response: reply})
}
