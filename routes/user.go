package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/junaidrashid-git/kula-api/controllers/cart"
	menuControllers "github.com/junaidrashid-git/kula-api/controllers/menu"
	orderControllers "github.com/junaidrashid-git/kula-api/controllers/order"
	userControllers "github.com/junaidrashid-git/kula-api/controllers/user"
	"github.com/junaidrashid-git/kula-api/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.Tokens))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(d.Profiles)) // GET /user/

		// ──────────────── Menu ────────────────
		userGroup.GET("/menu", menuControllers.GetMenu(d.Menu, d.Now)) // GET /user/menu

		// ──────────────── Orders ────────────────
		userGroup.POST("/orders", orderControllers.PlaceOrderHandler(d.Menu, d.Orders)) // POST /user/orders

		// ──────────────── Cart ────────────────
		userGroup.GET("/cart", cartControllers.GetUserCart(d.Orders))             // GET /user/cart
		userGroup.GET("/cart/ws", cartControllers.CartWebSocketHandler(d.Orders)) // GET /user/cart/ws
	}
}
