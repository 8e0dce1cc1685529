package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	// Ping godoc
	// @Summary      Health check
	// @Tags         health
	// @Produce      json
	// @Success      200 {object} map[string]string
	// @Router       /ping [get]
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
