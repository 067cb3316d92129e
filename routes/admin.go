package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/therafiali/woocommerce-storefront/controllers/product"
	remotecartControllers "github.com/therafiali/woocommerce-storefront/controllers/remotecart"
	"github.com/therafiali/woocommerce-storefront/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the API key.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAPIKey(deps.Cfg.AdminAPIKey))
	{
		adminGroup.POST("/products", productcontroller.CreateProduct(deps.Client, deps.Hub))        // POST /admin/products
		adminGroup.POST("/products/import", productcontroller.ImportProductsFromExcel(deps.Client)) // POST /admin/products/import
		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(deps.Client))    // GET /admin/products/export

		adminGroup.PUT("/extra-charge", remotecartControllers.SetExtraCharge(deps.RemoteCart)) // PUT /admin/extra-charge
	}
}
