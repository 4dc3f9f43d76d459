package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tanzimhossain222/chrono-boost/internal/middleware"
	"github.com/Tanzimhossain222/chrono-boost/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

type taskTextRequest struct {
	Text string `json:"text"`
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Add(c *gin.Context) {
	var req taskTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}

	userID := middleware.UserID(c)
	view, apiErr := h.taskService.Add(c.Request.Context(), userID, req.Text)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"state": view})
}

func (h *TaskHandler) Toggle(c *gin.Context) {
	userID := middleware.UserID(c)
	view, apiErr := h.taskService.Toggle(c.Request.Context(), userID, c.Param("id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": view})
}

func (h *TaskHandler) Rename(c *gin.Context) {
	var req taskTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}

	userID := middleware.UserID(c)
	view, apiErr := h.taskService.Rename(c.Request.Context(), userID, c.Param("id"), req.Text)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": view})
}

func (h *TaskHandler) Remove(c *gin.Context) {
	userID := middleware.UserID(c)
	view, apiErr := h.taskService.Remove(c.Request.Context(), userID, c.Param("id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": view})
}
