package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/catalog"
	"github.com/junaidrashid-git/kula-api/ordercart"
	"github.com/junaidrashid-git/kula-api/profile"
)

// Deps are the services the HTTP surface is built on.
type Deps struct {
	Gate     *auth.Gate
	Tokens   *auth.Tokens
	Menu     *catalog.Reader
	Orders   *ordercart.Service
	Profiles *profile.Reader
	Now      func() time.Time
}

// SetupRoutes is the single entry‐point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}

	// 1️⃣ Public Auth routes
	SetupAuthRoutes(r, d)

	// 2️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, d)

	// 3️⃣ Admin routes (JWT + admin role)
	SetupAdminRoutes(r, d)
}
