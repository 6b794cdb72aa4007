package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/analysisdata/graph-backend/internal/http/response"
)

type HealthcheckHandler struct{}

func NewHealthcheckHandler() *HealthcheckHandler {
	return &HealthcheckHandler{}
}

func (h *HealthcheckHandler) Healthcheck(c *gin.Context) {
	response.RespondOK(c, gin.H{"status": "ok"})
}
