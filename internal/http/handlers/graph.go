package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/analysisdata/graph-backend/internal/http/response"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
	"github.com/analysisdata/graph-backend/internal/services"
)

type GraphHandler struct {
	log             *logger.Logger
	queryService    services.GraphQueryService
	searchService   services.NodeSearchService
	relationService services.NodeRelationService
	infoService     services.NodeInfoService
}

func NewGraphHandler(
	log *logger.Logger,
	queryService services.GraphQueryService,
	searchService services.NodeSearchService,
	relationService services.NodeRelationService,
	infoService services.NodeInfoService,
) *GraphHandler {
	return &GraphHandler{
		log:             log.With("handler", "GraphHandler"),
		queryService:    queryService,
		searchService:   searchService,
		relationService: relationService,
		infoService:     infoService,
	}
}

// ListNodes serves GET /api/graph/nodes. An optional categoryId narrows
// the listing to one category's files.
func (h *GraphHandler) ListNodes(c *gin.Context) {
	pageIndex, pageSize := pageWindow(c)

	var categoryID *int
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_category_id", err)
			return
		}
		categoryID = &id
	}

	page, err := h.queryService.ListNodes(c.Request.Context(), categoryID, pageIndex, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, page)
}

// GetNodeAttributes serves GET /api/graph/nodes/:nodeId/attributes.
func (h *GraphHandler) GetNodeAttributes(c *gin.Context) {
	nodeID, err := uuid.Parse(c.Param("nodeId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_node_id", err)
		return
	}

	values, err := h.infoService.GetNodeAttributes(c.Request.Context(), nodeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, values)
}

// GetEdgeAttributes serves GET /api/graph/edges/:edgeId/attributes.
func (h *GraphHandler) GetEdgeAttributes(c *gin.Context) {
	edgeID, err := uuid.Parse(c.Param("edgeId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_edge_id", err)
		return
	}

	values, err := h.infoService.GetEdgeAttributes(c.Request.Context(), edgeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, values)
}

// NodesRelation serves GET /api/graph/nodes-relation.
func (h *GraphHandler) NodesRelation(c *gin.Context) {
	nodeID, err := uuid.Parse(c.Query("nodeId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_node_id", err)
		return
	}

	graph, err := h.relationService.ExpandNeighbors(c.Request.Context(), nodeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, graph)
}

// SearchNodes serves GET /api/graph/search.
func (h *GraphHandler) SearchNodes(c *gin.Context) {
	pageIndex, pageSize := pageWindow(c)
	page, err := h.searchService.SearchNodes(c.Request.Context(), c.Query("text"), c.Query("mode"), pageIndex, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, page)
}
