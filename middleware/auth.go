package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/kula-api/auth"
)

// ValidateToken reads the bearer token and puts the session it carries on
// the request context. Requests without a valid token stop here with 401.
func ValidateToken(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearer(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		session, err := tokens.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(auth.NewContext(c.Request.Context(), session))
		c.Set("user_id", session.UserID)
		c.Set(auth.TokenKey, tokenString)
		c.Next()
	}
}

// Browsers cannot set headers on a websocket handshake, so the token may also
// come as ?token=.
func bearer(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header != "" {
		if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
			return strings.TrimSpace(header[7:])
		}
		return header
	}
	return c.Query("token")
}
