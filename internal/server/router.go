package server

import (
	"github.com/gin-gonic/gin"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/http/handlers"
	"github.com/analysisdata/graph-backend/internal/http/middleware"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log                *logger.Logger
	AllowedOrigins     []string
	AuthMiddleware     *middleware.AuthMiddleware
	HealthcheckHandler *handlers.HealthcheckHandler
	AuthHandler        *handlers.AuthHandler
	GraphHandler       *handlers.GraphHandler
	FileHandler        *handlers.FileHandler
	FileAccessHandler  *handlers.FileAccessHandler
	CategoryHandler    *handlers.CategoryHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Public
	router.GET("/healthcheck", cfg.HealthcheckHandler.Healthcheck)
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/register", cfg.AuthHandler.Register)
	}

	// Protected. Graph reads are open to any authenticated role; uploads
	// and access administration are admin-only. The file listing stays
	// open because its results are grant-scoped per caller.
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	adminOnly := cfg.AuthMiddleware.RequireRole(types.RoleAdmin, types.RoleDataAdmin)

	graph := api.Group("/graph")
	{
		graph.GET("/nodes", cfg.GraphHandler.ListNodes)
		graph.GET("/nodes/:nodeId/attributes", cfg.GraphHandler.GetNodeAttributes)
		graph.GET("/edges/:edgeId/attributes", cfg.GraphHandler.GetEdgeAttributes)
		graph.GET("/nodes-relation", cfg.GraphHandler.NodesRelation)
		graph.GET("/search", cfg.GraphHandler.SearchNodes)
	}

	file := api.Group("/file")
	{
		file.POST("/upload-file-node", adminOnly, cfg.FileHandler.UploadNodeFile)
		file.POST("/upload-file-edge", adminOnly, cfg.FileHandler.UploadEdgeFile)
		file.GET("/files", cfg.FileHandler.ListFiles)
		file.GET("/my-uploads", adminOnly, cfg.FileHandler.ListMyUploads)
	}

	fileAccess := api.Group("/file-access")
	fileAccess.Use(adminOnly)
	{
		fileAccess.GET("/users", cfg.FileAccessHandler.SearchUsers)
		fileAccess.GET("/:fileId/users", cfg.FileAccessHandler.WhoHasAccess)
		fileAccess.PUT("/:fileId", cfg.FileAccessHandler.ReconcileAccess)
	}

	category := api.Group("/category")
	category.Use(adminOnly)
	{
		category.POST("", cfg.CategoryHandler.Create)
		category.GET("", cfg.CategoryHandler.List)
		category.PUT("/:categoryId", cfg.CategoryHandler.Rename)
		category.DELETE("/:categoryId", cfg.CategoryHandler.Delete)
	}

	return router
}
