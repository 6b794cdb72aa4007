package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/analysisdata/graph-backend/internal/http/response"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
	"github.com/analysisdata/graph-backend/internal/services"
)

type CategoryHandler struct {
	log             *logger.Logger
	categoryService services.CategoryService
}

func NewCategoryHandler(log *logger.Logger, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		log:             log.With("handler", "CategoryHandler"),
		categoryService: categoryService,
	}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create serves POST /api/category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, category)
}

// List serves GET /api/category.
func (h *CategoryHandler) List(c *gin.Context) {
	page, limit := pageLimit(c)
	categories, err := h.categoryService.ListCategories(c.Request.Context(), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, categories)
}

// Rename serves PUT /api/category/:categoryId.
func (h *CategoryHandler) Rename(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_category_id", err)
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	category, err := h.categoryService.RenameCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, category)
}

// Delete serves DELETE /api/category/:categoryId.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_category_id", err)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"status": "ok"})
}
