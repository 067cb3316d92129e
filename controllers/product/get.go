package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/therafiali/woocommerce-storefront/wc"
)

// GetProductByID proxies a single catalog entry.
// URL param: /products/:id
func GetProductByID(client *wc.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := client.GetProduct(uint(id))
		if err != nil {
			status := catalogStatus(err)
			msg := err.Error()
			if status == http.StatusNotFound {
				msg = "Product not found"
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
