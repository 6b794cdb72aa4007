package app

import (
	"github.com/analysisdata/graph-backend/internal/http/middleware"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, svcs Services) Middleware {
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, svcs.Auth),
	}
}
