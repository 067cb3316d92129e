package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/therafiali/woocommerce-storefront/controllers/notify"
	"github.com/therafiali/woocommerce-storefront/models"
	"github.com/therafiali/woocommerce-storefront/wc"
)

// CreateProduct submits a product draft to the remote catalog.
// POST /admin/products
func CreateProduct(client *wc.Client, hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft models.ProductDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if _, err := strconv.ParseFloat(draft.RegularPrice, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid regular_price"})
			return
		}

		created, err := client.CreateProduct(draft)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		hub.Broadcast(notify.KindProductCreated, fmt.Sprintf("Product %q added successfully!", created.Name))
		c.JSON(http.StatusCreated, created)
	}
}
