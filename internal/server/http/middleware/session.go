package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionContextKey is a gin context key for the cart session identifier.
	SessionContextKey = "cartSession"
	cartCookieName    = "alexcoffee_cart"
	// Cart cookies outlive the server-side cart TTL; an expired cart
	// simply comes back empty under the same identifier.
	cartCookieMaxAge = 30 * 24 * 60 * 60
)

// CartSession guarantees every request carries a cart session
// identifier, minting a fresh one for first-time visitors.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cartCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(cartCookieName, sessionID, cartCookieMaxAge, "/", "", false, true)
		}
		c.Set(SessionContextKey, sessionID)
		c.Next()
	}
}
