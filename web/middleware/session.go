package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "zakia_session"
const CookieMaxAge = 30 * 24 * 60 * 60 // 30 days

const sessionContextKey = "sessionID"

// SessionMiddleware assigns every visitor a stable session ID via an
// HttpOnly cookie. Sessions live in memory, so the ID is just an opaque
// handle; a missing or empty cookie gets a fresh UUID.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookieName, sessionID, CookieMaxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session ID set by SessionMiddleware, or "" when the
// middleware did not run.
func SessionID(c *gin.Context) string {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return ""
	}
	sessionID, ok := value.(string)
	if !ok {
		return ""
	}
	return sessionID
}
