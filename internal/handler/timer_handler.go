package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tanzimhossain222/chrono-boost/internal/middleware"
	"github.com/Tanzimhossain222/chrono-boost/internal/model"
	"github.com/Tanzimhossain222/chrono-boost/internal/service"
)

type TimerHandler struct {
	timerService *service.TimerService
}

func NewTimerHandler(timerService *service.TimerService) *TimerHandler {
	return &TimerHandler{timerService: timerService}
}

func (h *TimerHandler) GetState(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{"code": "unauthorized", "message": "unauthorized"},
		})
		return
	}

	view, apiErr := h.timerService.State(c.Request.Context(), userID)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": view})
}

func (h *TimerHandler) Start(c *gin.Context) {
	userID := middleware.UserID(c)
	view, apiErr := h.timerService.Start(c.Request.Context(), userID)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": view})
}

func (h *TimerHandler) Pause(c *gin.Context) {
	userID := middleware.UserID(c)
	view, apiErr := h.timerService.Pause(c.Request.Context(), userID)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": view})
}

func (h *TimerHandler) Reset(c *gin.Context) {
	userID := middleware.UserID(c)
	view, apiErr := h.timerService.Reset(c.Request.Context(), userID)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": view})
}

func (h *TimerHandler) Complete(c *gin.Context) {
	userID := middleware.UserID(c)
	view, apiErr := h.timerService.Complete(c.Request.Context(), userID)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": view})
}

func (h *TimerHandler) UpdateSettings(c *gin.Context) {
	var patch model.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}

	userID := middleware.UserID(c)
	view, apiErr := h.timerService.UpdateSettings(c.Request.Context(), userID, patch)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": view})
}
