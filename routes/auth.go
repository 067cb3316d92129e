package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/therafiali/woocommerce-storefront/auth"
)

// SetupAuthRoutes registers the public session-issuing endpoint.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession(deps.Sessions, deps.Cfg.JWTSecret)) // POST /auth/session
	}
}
