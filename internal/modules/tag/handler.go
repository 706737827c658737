package tag

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
	tags := protected.Group("/tags")
	{
		tags.GET("", h.List)
		tags.POST("", h.Create)
		tags.PUT("/:id", h.Update)
		tags.DELETE("/:id", h.Delete)
	}
}

type upsertTagRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (h *Handler) List(c *gin.Context) {
	tags, err := h.service.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		log.Printf("tag list failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *Handler) Create(c *gin.Context) {
	var req upsertTagRequest
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

	t, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), *req.Name, color)
	if err != nil {
		log.Printf("tag create failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create tag")
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) Update(c *gin.Context) {
	var req upsertTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Name, req.Color)
	if err != nil {
		h.writeError(c, err, "Failed to update tag")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		h.writeError(c, err, "Failed to delete tag")
		return
	}
	response.Message(c, http.StatusOK, "Tag deleted successfully")
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Tag not found")
	case errors.Is(err, ErrDefaultImmutable):
		response.Error(c, http.StatusBadRequest, "Cannot modify name of default tag")
	case errors.Is(err, ErrDefaultDelete):
		response.Error(c, http.StatusBadRequest, "Cannot delete default tag")
	case errors.Is(err, ErrNameTaken):
		response.Error(c, http.StatusBadRequest, "Tag with this name already exists")
	default:
		log.Printf("tag handler error: %v", err)
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
