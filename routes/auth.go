package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/middleware"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(d.Gate, d.Tokens))
		authGroup.POST("/register", auth.RegisterHandler(d.Gate, d.Tokens))
		authGroup.POST("/logout", middleware.ValidateToken(d.Tokens), auth.LogoutHandler(d.Gate, d.Tokens))
	}
}
