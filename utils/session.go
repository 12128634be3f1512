package utils

import (
	"github.com/gin-gonic/gin"
)

// Session is the verified identity of the caller, built by the auth
// middleware and passed explicitly to handlers. Business logic never reads
// ambient auth state.
type Session struct {
	UID   string
	Email string
	Role  string
}

const sessionKey = "session"

// SetSession stores the session on the request context.
func SetSession(c *gin.Context, s Session) {
	c.Set(sessionKey, s)
}

// GetSession retrieves the session set by the auth middleware.
func GetSession(c *gin.Context) (Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
