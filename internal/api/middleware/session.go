package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "medassist_session"
	SessionKey    = "session_id"

	sessionMaxAge = 30 * 24 * 60 * 60
)

// Session gives every caller a stable conversation identity. A missing or
// malformed cookie is replaced with a fresh UUID.
func Session(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", secure, true)
		c.Set(SessionKey, sid)
		c.Next()
	}
}
