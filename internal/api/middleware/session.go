package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the storefront session ID; clients that can't use
// cookies echo it back on every request.
const SessionHeader = "X-Session-ID"

const (
	sessionCookie     = "sf_session"
	sessionContextKey = "storefront_session_id"
	cookieMaxAge      = 30 * 24 * 60 * 60
)

// SessionMiddleware reads the session ID from the header or cookie and
// issues a fresh one when absent. The ID namespaces the client's cart and
// language selection, standing in for the browser's per-profile storage.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, cookieMaxAge, "/", "", false, true)
		}

		c.Header(SessionHeader, sessionID)
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the session ID set by SessionMiddleware
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, ok := c.Get(sessionContextKey)
	if !ok {
		return "", false
	}
	id, ok := sessionID.(string)
	return id, ok && id != ""
}
