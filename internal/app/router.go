package app

import (
	"github.com/gin-gonic/gin"

	"github.com/analysisdata/graph-backend/internal/platform/logger"
	"github.com/analysisdata/graph-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:                log,
		AllowedOrigins:     cfg.AllowedOrigins,
		AuthMiddleware:     mw.Auth,
		HealthcheckHandler: handlers.Healthcheck,
		AuthHandler:        handlers.Auth,
		GraphHandler:       handlers.Graph,
		FileHandler:        handlers.File,
		FileAccessHandler:  handlers.FileAccess,
		CategoryHandler:    handlers.Category,
	})
}
