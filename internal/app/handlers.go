package app

import (
	"github.com/analysisdata/graph-backend/internal/http/handlers"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type Handlers struct {
	Healthcheck *handlers.HealthcheckHandler
	Auth        *handlers.AuthHandler
	Graph       *handlers.GraphHandler
	File        *handlers.FileHandler
	FileAccess  *handlers.FileAccessHandler
	Category    *handlers.CategoryHandler
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	return Handlers{
		Healthcheck: handlers.NewHealthcheckHandler(),
		Auth:        handlers.NewAuthHandler(log, svcs.Auth),
		Graph:       handlers.NewGraphHandler(log, svcs.GraphQuery, svcs.NodeSearch, svcs.Relation, svcs.NodeInfo),
		File:        handlers.NewFileHandler(log, svcs.FileUpload, svcs.FileAccess),
		FileAccess:  handlers.NewFileAccessHandler(log, svcs.FileAccess),
		Category:    handlers.NewCategoryHandler(log, svcs.Category),
	}
}
