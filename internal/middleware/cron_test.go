package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func cronRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/cleanup", CronAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestCronAuth_PlatformSignature(t *testing.T) {
	router := cronRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/cleanup", nil)
	req.Header.Set(PlatformSignatureHeader, "sig-from-platform")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCronAuth_BearerSecret(t *testing.T) {
	router := cronRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/cleanup", nil)
	req.Header.Set("Authorization", "Bearer secret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCronAuth_WrongSecret(t *testing.T) {
	router := cronRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/cleanup", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestCronAuth_NoCredentials(t *testing.T) {
	router := cronRouter("secret")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/cleanup", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCronAuth_EmptySecretRejectsBearer(t *testing.T) {
	router := cronRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/cleanup", nil)
	req.Header.Set("Authorization", "Bearer ")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "an unset secret must not open the endpoint")
}
