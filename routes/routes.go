package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/therafiali/woocommerce-storefront/checkout"
	"github.com/therafiali/woocommerce-storefront/config"
	"github.com/therafiali/woocommerce-storefront/controllers/notify"
	"github.com/therafiali/woocommerce-storefront/remotecart"
	"github.com/therafiali/woocommerce-storefront/session"
	"github.com/therafiali/woocommerce-storefront/wc"
)

// Deps bundles the constructed services the route groups wire handlers to.
type Deps struct {
	Cfg        config.Config
	Client     *wc.Client
	Sessions   *session.Manager
	Checkout   *checkout.Service
	RemoteCart *remotecart.Service
	Hub        *notify.Hub
}

// SetupRoutes is the single entry-point that wires up the auth, store, admin,
// and notification route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Store routes (guest-token protected)
	SetupStoreRoutes(r, deps)

	// Admin routes (API-key protected)
	SetupAdminRoutes(r, deps)

	// Websocket notification feed
	r.GET("/ws/notifications", deps.Hub.Handler())
}
