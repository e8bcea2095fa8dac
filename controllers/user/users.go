package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/profile"
)

// GET /user
func GetUser(profiles *profile.Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		s := auth.FromContext(ctx)
		c.JSON(http.StatusOK, gin.H{
			"profile": profiles.Load(ctx, s),
			"session": s,
			"screens": auth.Reachable(s),
		})
	}
}
