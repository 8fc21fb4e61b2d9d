package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_backend/internal/feature/auth/usecase"
	"quote_backend/internal/platform/token"
)

// CookieName is the name of the cookie carrying the signed session token.
const CookieName = "session_token"

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextUserID    = "userID"
	ContextSessionID = "sessionID"
)

// AuthRequired returns a Gin middleware function that resolves the session
// cookie and restricts access to authenticated users only.
func AuthRequired(tokens token.Manager, sessions usecase.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get session cookie
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		// 2. Verify token signature and extract the session ID
		sessionID, err := tokens.ParseSessionToken(cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		// 3. Resolve the session in the store
		session, err := sessions.FindByID(c.Request.Context(), sessionID)
		if err != nil || !session.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		// 4. Expose identity to downstream handlers
		c.Set(ContextUserID, session.UserID)
		c.Set(ContextSessionID, session.ID)

		// 5. Pass control to the next handler
		c.Next()
	}
}
