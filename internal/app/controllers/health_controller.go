package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studymate/courseapi/internal/app/models/dto"
)

// HealthCheck reports that the process is serving
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse "Service is up"
// @Router /health [get]
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"status": "ok"},
		Timestamp: time.Now(),
	})
}
