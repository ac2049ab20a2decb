package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yoockh/medassist/internal/api/middleware"
	"github.com/yoockh/medassist/internal/services"
	"github.com/yoockh/medassist/internal/utils"
)

type APIError struct {
	Error string `json:"error"`
}

// writeError never leaks detail: only invalid-argument errors carry their own
// message to the caller, everything else gets the generic failure text.
func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	msg := services.MsgInternalFailed
	if utils.IsCode(err, utils.CodeInvalidArgument) {
		msg = utils.SafeMessage(err, msg)
	}
	c.JSON(status, APIError{Error: msg})
}

func sessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionKey)
}
