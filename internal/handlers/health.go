package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion-marketplace-backend/internal/models"
)

// HealthHandler reports liveness.
func HealthHandler(c *gin.Context) {
	response := models.HealthResponse{
		Status: "ok",
	}
	c.JSON(http.StatusOK, response)
}
