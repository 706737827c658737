package task

import (
	"errors"
	"log"
	"net/http"

	"taskboard/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts task endpoints on an authenticated group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	tasks := protected.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/:id", h.Get)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	tasks, err := h.service.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		log.Printf("task list failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		response.Error(c, http.StatusBadRequest, "Title is required")
		return
	}

	t, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		log.Printf("task create failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) Get(c *gin.Context) {
	t, err := h.service.Get(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to fetch task")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to delete task")
		return
	}
	response.Message(c, http.StatusOK, "Task deleted successfully")
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Task not found")
	case errors.Is(err, ErrAccessDenied):
		response.Error(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, ErrStatusNotFound):
		response.Error(c, http.StatusBadRequest, "Status not found")
	case errors.Is(err, ErrTagsNotFound):
		response.Error(c, http.StatusBadRequest, "One or more tags not found")
	default:
		log.Printf("task handler error: %v", err)
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
