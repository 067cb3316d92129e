package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/therafiali/woocommerce-storefront/middleware"
	"github.com/therafiali/woocommerce-storefront/session"
)

// POST /auth/session
func CreateSession(manager *session.Manager, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := manager.New()

		token, err := middleware.IssueSessionToken(jwtSecret, sess.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sess.ID,
			"token":      token,
			"expires_at": time.Now().Add(middleware.SessionTTL),
		})
	}
}
