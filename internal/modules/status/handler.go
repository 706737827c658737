package status

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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	statuses := protected.Group("/statuses")
	{
		statuses.GET("", h.List)
		statuses.POST("", h.Create)
		statuses.PUT("/:id", h.Update)
		statuses.DELETE("/:id", h.Delete)
	}
}

type upsertStatusRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (h *Handler) List(c *gin.Context) {
	statuses, err := h.service.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		log.Printf("status list failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch statuses")
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func (h *Handler) Create(c *gin.Context) {
	var req upsertStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == nil || *req.Name == "" {
		response.Error(c, http.StatusBadRequest, "Name is required")
		return
	}
	color := ""
	if req.Color != nil {
		color = *req.Color
	}

	st, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), *req.Name, color)
	if err != nil {
		log.Printf("status create failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create status")
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (h *Handler) Update(c *gin.Context) {
	var req upsertStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	st, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Name, req.Color)
	if err != nil {
		h.writeError(c, err, "Failed to update status")
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) Delete(c *gin.Context) {
	reassigned, err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to delete status")
		return
	}
	msg := "Status deleted successfully"
	if reassigned {
		msg = "Status deleted successfully and tasks reassigned to 'To Do'"
	}
	response.Message(c, http.StatusOK, msg)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Status not found")
	case errors.Is(err, ErrAccessDenied):
		response.Error(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, ErrDefaultImmutable):
		response.Error(c, http.StatusBadRequest, "Cannot modify name of default status")
	case errors.Is(err, ErrDefaultDelete):
		response.Error(c, http.StatusBadRequest, "Cannot delete default status")
	case errors.Is(err, ErrNameTaken):
		response.Error(c, http.StatusBadRequest, "Status with this name already exists")
	case errors.Is(err, ErrNoFallbackStatus):
		response.Error(c, http.StatusInternalServerError, "Default 'To Do' status not found")
	default:
		log.Printf("status handler error: %v", err)
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
