package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazzsaeedharis/postgres-nl-agent/internal/db"
)

// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": db.Ping(c.Request.Context()),
	})
}
