package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/therafiali/woocommerce-storefront/controllers/cart"
	orderControllers "github.com/therafiali/woocommerce-storefront/controllers/order"
	productcontroller "github.com/therafiali/woocommerce-storefront/controllers/product"
	remotecartControllers "github.com/therafiali/woocommerce-storefront/controllers/remotecart"
	"github.com/therafiali/woocommerce-storefront/middleware"
)

// SetupStoreRoutes registers all "/store/*" endpoints. Requires the guest
// session middleware.
func SetupStoreRoutes(r *gin.Engine, deps Deps) {
	storeGroup := r.Group("/store")
	storeGroup.Use(middleware.ValidateSession(deps.Cfg.JWTSecret))
	{
		// ──────────────── Browse Products ────────────────
		storeGroup.GET("/products", productcontroller.GetProducts(deps.Client))        // GET /store/products
		storeGroup.GET("/products/:id", productcontroller.GetProductByID(deps.Client)) // GET /store/products/:id

		// ──────────────── Shopping Cart ────────────────
		cartGroup := storeGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(deps.Sessions))                      // GET /store/cart
			cartGroup.POST("/", cartControllers.AddCartItem(deps.Sessions, deps.Client))    // POST /store/cart
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(deps.Sessions))    // PUT /store/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Sessions)) // DELETE /store/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCart(deps.Sessions))                 // DELETE /store/cart
		}

		// ──────────────── Checkout ────────────────
		storeGroup.GET("/customer", orderControllers.GetCustomer(deps.Sessions))                        // GET /store/customer
		storeGroup.PUT("/customer", orderControllers.UpdateCustomer(deps.Sessions))                     // PUT /store/customer
		storeGroup.POST("/checkout", orderControllers.Checkout(deps.Checkout, deps.Sessions, deps.Hub)) // POST /store/checkout

		// ──────────────── Remote Cart ────────────────
		storeGroup.POST("/remote-cart", remotecartControllers.AddToRemoteCart(deps.RemoteCart)) // POST /store/remote-cart
		storeGroup.GET("/extra-charge", remotecartControllers.GetExtraCharge(deps.RemoteCart))  // GET /store/extra-charge
	}
}
