package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/therafiali/woocommerce-storefront/wc"
)

// GetProducts proxies the remote catalog listing. The gateway keeps no
// catalog state, so every call is a fresh snapshot.
func GetProducts(client *wc.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := client.FetchProducts()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// catalogStatus maps a client error to the status the gateway responds with.
func catalogStatus(err error) int {
	var netErr *wc.NetworkError
	if errors.As(err, &netErr) && netErr.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
