package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/analysisdata/graph-backend/internal/http/response"
	pkgerrors "github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
	"github.com/analysisdata/graph-backend/internal/services"
)

type FileAccessHandler struct {
	log           *logger.Logger
	accessService services.FileAccessService
}

func NewFileAccessHandler(log *logger.Logger, accessService services.FileAccessService) *FileAccessHandler {
	return &FileAccessHandler{
		log:           log.With("handler", "FileAccessHandler"),
		accessService: accessService,
	}
}

// WhoHasAccess serves GET /api/file-access/:fileId/users.
func (h *FileAccessHandler) WhoHasAccess(c *gin.Context) {
	fileID, err := strconv.Atoi(c.Param("fileId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_file_id", err)
		return
	}

	users, err := h.accessService.WhoHasAccess(c.Request.Context(), fileID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"users": users})
}

// SearchUsers serves GET /api/file-access/users.
func (h *FileAccessHandler) SearchUsers(c *gin.Context) {
	users, err := h.accessService.SearchUsersForAccess(c.Request.Context(), c.Query("username"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"users": users})
}

type reconcileAccessRequest struct {
	UserIDs []string `json:"userIds"`
}

// ReconcileAccess serves PUT /api/file-access/:fileId. The body's user set
// becomes the file's complete grant set.
func (h *FileAccessHandler) ReconcileAccess(c *gin.Context) {
	fileID, err := strconv.Atoi(c.Param("fileId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_file_id", err)
		return
	}

	var req reconcileAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	userIDs := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondServiceError(c, pkgerrors.ErrInvalidUserID)
			return
		}
		userIDs = append(userIDs, id)
	}

	if err := h.accessService.ReconcileAccess(c.Request.Context(), fileID, userIDs); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"status": "ok"})
}
