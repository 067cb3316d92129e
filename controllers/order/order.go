package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/therafiali/woocommerce-storefront/checkout"
	"github.com/therafiali/woocommerce-storefront/controllers/notify"
	"github.com/therafiali/woocommerce-storefront/models"
	"github.com/therafiali/woocommerce-storefront/session"
	"github.com/therafiali/woocommerce-storefront/wc"
)

func currentSession(c *gin.Context, manager *session.Manager) (*session.Session, bool) {
	id := c.GetString("session_id")
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return manager.Get(id), true
}

// GET /store/customer
func GetCustomer(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, manager)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sess.Customer())
	}
}

// PUT /store/customer
// Replaces the checkout form draft. Required-field checks happen at
// submission time, not here, so partial drafts are fine.
func UpdateCustomer(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, manager)
		if !ok {
			return
		}

		var info models.CustomerInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess.SetCustomer(info)
		c.JSON(http.StatusOK, info)
	}
}

// POST /store/checkout
func Checkout(svc *checkout.Service, manager *session.Manager, hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, manager)
		if !ok {
			return
		}

		result, err := svc.Submit(sess)
		if err != nil {
			var validationErr *checkout.ValidationError
			var apiErr *wc.APIError
			switch {
			case errors.As(err, &validationErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
			case errors.As(err, &apiErr):
				c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Error()})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			}
			return
		}

		hub.Broadcast(notify.KindOrderCreated, result.Message)
		c.JSON(http.StatusCreated, result)
	}
}
