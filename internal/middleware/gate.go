package middleware

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"taskboard/internal/modules/auth"
	"taskboard/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

const loginPath = "/auth/login"

// SessionRefresh is what a successful server-to-server refresh call yields:
// the raw Set-Cookie headers to propagate and the new access token extracted
// from them.
type SessionRefresh struct {
	SetCookies  []string
	AccessToken string
}

// Refresher performs the synchronous refresh call on behalf of the gate.
type Refresher interface {
	RefreshSession(ctx context.Context, refreshToken string) (*SessionRefresh, error)
}

// Gate protects app-shell routes. Per request it decides allow, refresh or
// redirect using structural token checks only: a revoked-but-unexpired
// refresh token is treated as valid here and fails at the refresh call
// itself.
type Gate struct {
	verifier  *token.Verifier
	refresher Refresher
}

func NewGate(verifier *token.Verifier, refresher Refresher) *Gate {
	return &Gate{verifier: verifier, refresher: refresher}
}

func (g *Gate) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Auth pages are public.
		if strings.Contains(c.Request.URL.Path, "/auth") {
			c.Next()
			return
		}

		accessToken, _ := c.Cookie(auth.CookieAccessToken)
		refreshToken, _ := c.Cookie(auth.CookieRefreshToken)

		if accessToken == "" && refreshToken == "" {
			g.redirectToLogin(c)
			return
		}

		if accessToken != "" {
			if claims, err := g.verifier.VerifyAccess(accessToken); err == nil {
				allow(c, claims)
				return
			}
			log.Printf("gate access token invalid path=%s, refreshing", c.Request.URL.Path)
		}

		if refreshToken != "" {
			if claims, err := g.tryRefresh(c, refreshToken); err == nil {
				allow(c, claims)
				return
			} else {
				log.Printf("gate refresh failed path=%s: %v", c.Request.URL.Path, err)
			}
		}

		g.redirectToLogin(c)
	}
}

func (g *Gate) tryRefresh(c *gin.Context, refreshToken string) (*token.Claims, error) {
	if _, err := g.verifier.VerifyRefresh(refreshToken); err != nil {
		return nil, err
	}

	res, err := g.refresher.RefreshSession(c.Request.Context(), refreshToken)
	if err != nil {
		return nil, err
	}

	// Propagate the rotated pair onto the outgoing response so the browser
	// picks it up alongside the page.
	for _, sc := range res.SetCookies {
		c.Writer.Header().Add("Set-Cookie", sc)
	}

	claims, err := g.verifier.VerifyAccess(res.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("refreshed access token rejected: %w", err)
	}
	return claims, nil
}

func (g *Gate) redirectToLogin(c *gin.Context) {
	target := loginPath
	if p := c.Request.URL.Path; !strings.Contains(p, "/auth/") {
		target += "?from=" + url.QueryEscape(p)
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

func allow(c *gin.Context, claims *token.Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)
	c.Next()
}

// HTTPRefresher calls the service's own refresh endpoint. It deliberately
// carries no cookie jar: the refresh cookie is set per call and responses for
// different users must never bleed into shared state.
type HTTPRefresher struct {
	client     *http.Client
	refreshURL string
}

func NewHTTPRefresher(baseURL string) *HTTPRefresher {
	return &HTTPRefresher{
		client:     &http.Client{Timeout: 60 * time.Second},
		refreshURL: strings.TrimRight(baseURL, "/") + "/api/auth/refresh",
	}
}

func (r *HTTPRefresher) RefreshSession(ctx context.Context, refreshToken string) (*SessionRefresh, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.refreshURL, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: auth.CookieRefreshToken, Value: refreshToken})

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("refresh endpoint returned %d", resp.StatusCode)
	}

	out := &SessionRefresh{SetCookies: resp.Header.Values("Set-Cookie")}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.CookieAccessToken {
			out.AccessToken = cookie.Value
		}
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("no new access token received")
	}
	return out, nil
}
