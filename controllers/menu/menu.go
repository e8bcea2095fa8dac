package menuControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/kula-api/catalog"
	"github.com/junaidrashid-git/kula-api/models"
)

// GET /user/menu
//
// A failed catalog read still answers 200 with an empty menu and the reason
// under "error".
func GetMenu(reader *catalog.Reader, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"title": catalog.MenuTitle(now())}

		items, err := reader.ListMenu(c.Request.Context())
		if err != nil {
			var ferr *models.FetchError
			if !errors.As(err, &ferr) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			log.Printf("⚠️ Menu read failed: %v", err)
			body["items"] = []models.MenuItem{}
			body["error"] = ferr.Msg
			c.JSON(http.StatusOK, body)
			return
		}

		body["items"] = items
		c.JSON(http.StatusOK, body)
	}
}
