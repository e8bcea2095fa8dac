package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/kula-api/auth"
)

// RequireAdmin lets only admin sessions through. It must run after
// ValidateToken.
func RequireAdmin(c *gin.Context) {
	if !auth.CanReach(auth.FromContext(c.Request.Context()), auth.ScreenAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
