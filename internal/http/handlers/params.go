package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// pageWindow reads the pageIndex/pageSize window the graph read endpoints
// share.
func pageWindow(c *gin.Context) (int, int) {
	pageIndex := intQuery(c, "pageIndex", 0)
	pageSize := intQuery(c, "pageSize", 50)
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	return pageIndex, pageSize
}

func pageLimit(c *gin.Context) (int, int) {
	page := intQuery(c, "page", 0)
	limit := intQuery(c, "limit", 25)
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 25
	}
	return page, limit
}
