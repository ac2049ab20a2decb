package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/medassist/config"
	"github.com/yoockh/medassist/internal/api/handlers"
	"github.com/yoockh/medassist/internal/api/routes"
	"github.com/yoockh/medassist/internal/logger"
	"github.com/yoockh/medassist/internal/providers/llm"
	"github.com/yoockh/medassist/internal/repositories"
	"github.com/yoockh/medassist/internal/repositories/memory"
	redisrepo "github.com/yoockh/medassist/internal/repositories/redis"
	"github.com/yoockh/medassist/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New().WithError(err).Fatal("config load failed")
	}

	// built after Load so a LOG_LEVEL from .env applies
	log := logger.NewWithOutput(os.Stdout, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// Model gateway
	model, err := llm.NewVertexGemini(ctx, cfg.LLMOptions())
	if err != nil {
		log.WithError(err).Fatal("model gateway init failed")
	}
	defer model.Close()

	// Conversation store
	var convoRepo repositories.ConversationRepository
	switch cfg.Store.Backend {
	case config.StoreRedis:
		rdb, err := config.NewRedis(ctx, cfg.Store.Redis())
		if err != nil {
			log.WithError(err).Fatal("redis init failed")
		}
		defer rdb.Close()
		convoRepo = redisrepo.NewConversationRepo(rdb, cfg.Store.TTL, log)
	default:
		convoRepo = memory.NewConversationRepo(cfg.Store.TTL)
	}
	log.WithField("backend", cfg.Store.Backend).Info("conversation store ready")

	convoSvc := services.NewConversationService(convoRepo)
	chatSvc := services.NewChatService(convoSvc, model, log)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Chat:           handlers.NewChatHandler(chatSvc, convoSvc),
		Conversation:   handlers.NewConversationHandler(convoSvc),
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
		SecureCookies:  cfg.SecureCookies,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Leave room for a full model call.
		WriteTimeout: cfg.Model.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	log.WithField("port", cfg.Port).Info("server listening")
	waitForShutdown(server, log)
}

func waitForShutdown(server *http.Server, log logrus.FieldLogger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
