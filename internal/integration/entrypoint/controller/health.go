// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController handles health check endpoints.
type HealthController struct {
	db *gorm.DB
}

// NewHealthController creates a new health controller instance.
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{
		db: db,
	}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err != nil || sqlDB.PingContext(ctx.Request.Context()) != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "down",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "up",
	})
}
