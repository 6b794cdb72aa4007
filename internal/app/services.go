package app

import (
	"gorm.io/gorm"

	"github.com/analysisdata/graph-backend/internal/platform/logger"
	"github.com/analysisdata/graph-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	GraphQuery services.GraphQueryService
	NodeSearch services.NodeSearchService
	Relation   services.NodeRelationService
	NodeInfo   services.NodeInfoService
	FileUpload services.FileUploadService
	FileAccess services.FileAccessService
	Category   services.CategoryService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	visibility := services.NewVisibilityResolver(repos.GraphNode, repos.GraphEdge)

	return Services{
		Auth:       services.NewAuthService(db, log, repos.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		GraphQuery: services.NewGraphQueryService(db, log, visibility, repos.Category),
		NodeSearch: services.NewNodeSearchService(db, log, visibility),
		Relation:   services.NewNodeRelationService(db, log, visibility, repos.EntityNode, repos.EntityEdge),
		NodeInfo: services.NewNodeInfoService(
			db, log, visibility,
			repos.EntityNode, repos.EntityEdge,
			repos.GraphNode, repos.GraphEdge,
		),
		FileUpload: services.NewFileUploadService(
			db, log,
			repos.File, repos.Category,
			repos.EntityNode, repos.ValueNode,
			repos.EntityEdge, repos.ValueEdge,
			repos.AttributeNode, repos.AttributeEdge,
			cfg.NodeBatchSize, cfg.EdgeBatchSize,
		),
		FileAccess: services.NewFileAccessService(db, log, repos.File, repos.Grant, repos.User),
		Category:   services.NewCategoryService(db, log, repos.Category),
	}
}
