package cartControllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/therafiali/woocommerce-storefront/session"
	"github.com/therafiali/woocommerce-storefront/wc"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity"`
}

// currentSession resolves the session id the middleware validated. Aborts
// with 401 when the route was wired without the session middleware.
func currentSession(c *gin.Context, manager *session.Manager) (*session.Session, bool) {
	id := c.GetString("session_id")
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return manager.Get(id), true
}

func cartView(sess *session.Session) gin.H {
	return gin.H{
		"items": sess.Cart.Items(),
		"total": fmt.Sprintf("%.2f", sess.Cart.Total()),
		"count": sess.Cart.Count(),
	}
}

// GET /store/cart
func GetCart(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, manager)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartView(sess))
	}
}

// POST /store/cart
// Adds one unit of the product, snapshotting its current catalog price and
// primary image on first add.
func AddCartItem(manager *session.Manager, client *wc.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, manager)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := client.GetProduct(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		item := sess.Cart.AddItem(product)
		c.JSON(http.StatusCreated, gin.H{
			"message": fmt.Sprintf("%q added to cart!", product.Name),
			"item":    item,
			"cart":    cartView(sess),
		})
	}
}

// PUT /store/cart/:product_id
// A quantity of zero or less removes the line item.
func UpdateCartItem(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, manager)
		if !ok {
			return
		}

		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil || productID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !sess.Cart.SetQuantity(uint(productID), input.Quantity) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, cartView(sess))
	}
}

// DELETE /store/cart/:product_id
func DeleteCartItem(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, manager)
		if !ok {
			return
		}

		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil || productID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if !sess.Cart.RemoveItem(uint(productID)) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted", "cart": cartView(sess)})
	}
}

// DELETE /store/cart
func ClearCart(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, manager)
		if !ok {
			return
		}
		sess.Cart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
