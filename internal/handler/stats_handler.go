package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tanzimhossain222/chrono-boost/internal/middleware"
	"github.com/Tanzimhossain222/chrono-boost/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) Daily(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{"code": "unauthorized", "message": "unauthorized"},
		})
		return
	}

	rows, apiErr := h.statsService.Daily(c.Request.Context(), userID)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dailyStats": rows})
}
