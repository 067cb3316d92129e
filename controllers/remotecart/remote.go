package remotecartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/therafiali/woocommerce-storefront/models"
	"github.com/therafiali/woocommerce-storefront/remotecart"
)

// AddInput is the product the storefront is currently displaying; price is
// the listed catalog price the surcharge is computed from.
type AddInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	Price     string `json:"price"`
}

// POST /store/remote-cart
func AddToRemoteCart(svc *remotecart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			ID:    input.ProductID,
			Name:  input.Name,
			Price: input.Price,
		}

		result, err := svc.Add(product, input.Quantity)
		if err != nil {
			if errors.Is(err, remotecart.ErrInFlight) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /store/extra-charge
func GetExtraCharge(svc *remotecart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"extra_charge": svc.ExtraCharge()})
	}
}

// PUT /admin/extra-charge
func SetExtraCharge(svc *remotecart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ExtraCharge *float64 `json:"extra_charge" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		svc.SetExtraCharge(*input.ExtraCharge)
		c.JSON(http.StatusOK, gin.H{"extra_charge": svc.ExtraCharge()})
	}
}
