// Package session decides where a session credential travels between client and
// server: inbound extraction (Authorization header, then cookie) and outbound
// emission as an http-only cookie.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName is the name of the session cookie carrying the JWT.
const CookieName = "jwt"

// ExtractToken pulls a candidate token from the request. A Bearer token in the
// Authorization header takes precedence over the session cookie, so programmatic
// clients can override a stale browser cookie.
func ExtractToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		token := strings.TrimPrefix(auth, "Bearer ")
		if token != "" {
			return token, true
		}
	}

	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// WriteCookie persists the issued token as an http-only session cookie whose
// lifetime matches the token's expiry.
func WriteCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, maxAge, "/", "", false, true)
}

// ClearCookie emits a cookie with the same name, an empty value, and an expiry
// in the past. The token itself is not revoked server-side: a client that kept
// the bearer value can still authenticate via the header path until natural expiry.
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
