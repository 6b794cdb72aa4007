package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/analysisdata/graph-backend/internal/http/response"
	"github.com/analysisdata/graph-backend/internal/ingestion"
	"github.com/analysisdata/graph-backend/internal/platform/apierr"
)

// respondServiceError maps service errors onto HTTP statuses. Sentinels
// carry their own mapping as apierr values; anything unrecognized is
// reported as a plain 500 without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	var missingHeaders *ingestion.MissingHeadersError
	if errors.As(err, &missingHeaders) {
		response.RespondError(c, http.StatusBadRequest, "missing_headers", missingHeaders)
		return
	}

	var ae *apierr.Error
	if errors.As(err, &ae) {
		response.RespondError(c, ae.Status, ae.Code, ae)
		return
	}

	response.RespondError(c, http.StatusInternalServerError, "internal_error", errors.New("internal server error"))
}
