package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/catalog"
	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/ordercart"
)

type PlaceOrderRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	// Quantity defaults to 1 when omitted.
	Quantity *int   `json:"quantity"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// POST /user/orders
func PlaceOrderHandler(menu *catalog.Reader, orders ordercart.Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ctx := c.Request.Context()
		item, err := menu.FindItem(ctx, req.ItemID)
		if err != nil {
			if errors.Is(err, catalog.ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Menu item does not exist"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": errorMessage(err)})
			return
		}

		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		sel := ordercart.NewSelection(item, quantity, req.Location, req.Notes)
		total := sel.Total()

		ack, err := sel.Confirm(ctx, orders, auth.FromContext(ctx))
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": errorMessage(err)})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully!",
			"details": ack.Message(),
			"order":   ack,
			"total":   "$" + total.StringFixed(2),
		})
	}
}

func statusFor(err error) int {
	var verr *models.ValidationError
	var serr *models.SubmitError
	switch {
	case errors.Is(err, ordercart.ErrNotSignedIn):
		return http.StatusForbidden
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &serr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	var verr *models.ValidationError
	var serr *models.SubmitError
	var ferr *models.FetchError
	switch {
	case errors.As(err, &verr):
		return verr.Msg
	case errors.As(err, &serr):
		return serr.Msg
	case errors.As(err, &ferr):
		return ferr.Msg
	default:
		return err.Error()
	}
}
