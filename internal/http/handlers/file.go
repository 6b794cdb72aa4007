package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/http/response"
	"github.com/analysisdata/graph-backend/internal/ingestion"
	pkgerrors "github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
	"github.com/analysisdata/graph-backend/internal/services"
)

type FileHandler struct {
	log           *logger.Logger
	uploadService services.FileUploadService
	accessService services.FileAccessService
}

func NewFileHandler(
	log *logger.Logger,
	uploadService services.FileUploadService,
	accessService services.FileAccessService,
) *FileHandler {
	return &FileHandler{
		log:           log.With("handler", "FileHandler"),
		uploadService: uploadService,
		accessService: accessService,
	}
}

type uploadResponse struct {
	File  *types.FileEntity `json:"file,omitempty"`
	Stats *ingestion.Stats  `json:"stats"`
}

// UploadNodeFile serves POST /api/file/upload-file-node. Multipart form:
// "file" is the CSV, "categoryId" the target category, "header" the
// unique-id column name (defaults to Id), "name" an optional display name
// overriding the uploaded filename.
func (h *FileHandler) UploadNodeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondServiceError(c, pkgerrors.ErrNoFileUploaded)
		return
	}

	categoryID, err := strconv.Atoi(c.PostForm("categoryId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_category_id", err)
		return
	}

	displayName := c.PostForm("name")
	if displayName == "" {
		displayName = fileHeader.Filename
	}

	opened, err := openUpload(c, fileHeader)
	if err != nil {
		return
	}
	defer opened.Close()

	file, stats, err := h.uploadService.UploadNodeFile(
		c.Request.Context(), displayName, c.PostForm("header"), categoryID, opened)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, uploadResponse{File: file, Stats: stats})
}

// UploadEdgeFile serves POST /api/file/upload-file-edge. Multipart form:
// "file" is the CSV, "from" and "to" the endpoint column names (default
// SourceNodeName/TargetNodeName).
func (h *FileHandler) UploadEdgeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondServiceError(c, pkgerrors.ErrNoFileUploaded)
		return
	}

	opened, err := openUpload(c, fileHeader)
	if err != nil {
		return
	}
	defer opened.Close()

	stats, err := h.uploadService.UploadEdgeFile(
		c.Request.Context(), c.PostForm("from"), c.PostForm("to"), opened)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, uploadResponse{Stats: stats})
}

func openUpload(c *gin.Context, fileHeader *multipart.FileHeader) (multipart.File, error) {
	opened, err := fileHeader.Open()
	if err != nil {
		respondServiceError(c, err)
		return nil, err
	}
	return opened, nil
}

// ListFiles serves GET /api/file/files.
func (h *FileHandler) ListFiles(c *gin.Context) {
	page, limit := pageLimit(c)
	files, err := h.accessService.ListFiles(c.Request.Context(), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, files)
}

// ListMyUploads serves GET /api/file/my-uploads.
func (h *FileHandler) ListMyUploads(c *gin.Context) {
	files, err := h.accessService.ListMyUploads(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, files)
}
