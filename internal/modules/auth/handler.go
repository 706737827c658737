package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"taskboard/internal/pkg/response"
	"taskboard/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service *Service
	cookies CookieWriter
}

func NewHandler(service *Service, cookies CookieWriter) *Handler {
	return &Handler{
		service: service,
		cookies: cookies,
	}
}

// RegisterRoutes mounts the auth endpoints. cronAuth guards the cleanup
// endpoint; everything else is public.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, cronAuth gin.HandlerFunc) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/cron/cleanup", cronAuth, h.CronCleanup)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationErrors(c, http.StatusBadRequest, errs)
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "Email already in use")
			return
		}
		log.Printf("register failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.cookies.Set(c, result.AccessToken, result.RefreshToken)
	c.JSON(http.StatusCreated, gin.H{"user": result.User.Public()})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationErrors(c, http.StatusBadRequest, errs)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("login failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.cookies.Set(c, result.AccessToken, result.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"user": result.User.Public()})
}

func (h *Handler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(CookieRefreshToken)
	if err != nil || refreshToken == "" {
		response.Error(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		if !errors.Is(err, ErrInvalidRefreshToken) {
			log.Printf("refresh failed: %v", err)
		}
		// Signature, expiry and revocation failures are indistinguishable to
		// the client.
		response.Error(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	h.cookies.Set(c, result.AccessToken, result.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"user": result.User.Public()})
}

// Logout always succeeds from the client's perspective: cookies are cleared
// regardless of what the store does.
func (h *Handler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(CookieRefreshToken)

	h.cookies.Clear(c)
	h.service.Logout(c.Request.Context(), refreshToken)

	response.Message(c, http.StatusOK, "Logged out successfully")
}

func (h *Handler) CronCleanup(c *gin.Context) {
	count, err := h.service.CleanupExpired(c.Request.Context())
	if err != nil {
		log.Printf("cleanup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cleanup failed", "success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Cleaned up %d expired tokens", count),
		"success": true,
	})
}
