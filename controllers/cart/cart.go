package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/ordercart"
)

// GET /user/cart
func GetUserCart(orders *ordercart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		s := auth.FromContext(ctx)

		cart, err := orders.Snapshot(ctx, s.UserID)
		if err != nil {
			var ferr *models.FetchError
			switch {
			case errors.Is(err, ordercart.ErrNotSignedIn):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			case errors.As(err, &ferr):
				log.Printf("⚠️ Cart read failed for %s: %v", s.UserID, err)
				c.JSON(http.StatusOK, gin.H{"cart": models.NewCart(nil), "error": ferr.Msg})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}
