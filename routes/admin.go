package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/junaidrashid-git/kula-api/controllers/admin"
	"github.com/junaidrashid-git/kula-api/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Only admin sessions
// get through.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(d.Tokens), middleware.RequireAdmin)
	{
		// ─────────── Menu ───────────
		adminGroup.GET("/menu/export-excel", adminController.ExportMenuToExcel(d.Menu))
	}
}
