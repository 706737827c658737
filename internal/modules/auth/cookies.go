package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// CookieWriter is the single place cookie policy lives: httpOnly, SameSite
// strict, path /, secure in prod. Cookies are the only channel tokens travel
// through.
type CookieWriter struct {
	Secure        bool
	AccessMaxAge  int
	RefreshMaxAge int
}

func NewCookieWriter(secure bool, accessTTL, refreshTTL time.Duration) CookieWriter {
	return CookieWriter{
		Secure:        secure,
		AccessMaxAge:  int(accessTTL.Seconds()),
		RefreshMaxAge: int(refreshTTL.Seconds()),
	}
}

func (w CookieWriter) Set(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieAccessToken, accessToken, w.AccessMaxAge, "/", "", w.Secure, true)
	c.SetCookie(CookieRefreshToken, refreshToken, w.RefreshMaxAge, "/", "", w.Secure, true)
}

func (w CookieWriter) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieAccessToken, "", -1, "/", "", w.Secure, true)
	c.SetCookie(CookieRefreshToken, "", -1, "/", "", w.Secure, true)
}
