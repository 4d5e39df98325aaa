package app

import (
	"context"

	"account-service/internal/account"
	"account-service/internal/config"
	"account-service/internal/handler"
	"account-service/internal/middleware"
	"account-service/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)

	accountStore := account.NewPostgresStore(infra.DB)
	accountService := account.NewService(accountStore, account.PlaintextComparator{})

	accountHandler := handler.NewHandler(
		accountService,
		sessionStore,
		cfg.SessionTTL,
	)

	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob(cfg.TemplateGlob)

	accountHandler.RegisterRoutes(router, sessionMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
