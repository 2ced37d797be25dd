package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles the liveness route
type HealthHandler struct{}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root handles the GET / endpoint
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Kuber AI gold service running",
	})
}
