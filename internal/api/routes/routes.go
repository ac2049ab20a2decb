package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/medassist/internal/api/handlers"
	"github.com/yoockh/medassist/internal/api/middleware"
	"github.com/yoockh/medassist/internal/api/views"
	"github.com/yoockh/medassist/internal/metrics"
	"github.com/yoockh/medassist/internal/services"
)

type Deps struct {
	Chat         *handlers.ChatHandler
	Conversation *handlers.ConversationHandler
	Logger       logrus.FieldLogger

	AllowedOrigins []string
	SecureCookies  bool
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.SetHTMLTemplate(views.Templates())
	// logger first so a recovered panic is still logged with its 500
	r.Use(middleware.RequestLogger(d.Logger), gin.CustomRecovery(recovered))

	if len(d.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
			ExposeHeaders:    []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", metrics.Handler())

	chat := r.Group("/")
	chat.Use(middleware.Session(d.SecureCookies))

	chat.GET("/", d.Chat.Index)
	chat.POST("/send_message", d.Chat.SendMessage)
	chat.GET("/conversation", d.Conversation.List)
}

func recovered(c *gin.Context, v any) {
	_ = c.Error(fmt.Errorf("panic: %v", v))
	c.AbortWithStatusJSON(http.StatusInternalServerError, handlers.APIError{Error: services.MsgInternalFailed})
}
