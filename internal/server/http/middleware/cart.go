package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CartTokenContextKey is a gin context key for the anonymous cart token.
	CartTokenContextKey = "cartToken"

	cartCookieName = "storefront_cart"
	cartCookieAge  = 60 * 60 * 24 * 30
)

// CartSession guarantees every request carries a cart token. A missing
// cookie gets a fresh random token so a guest's cart survives across
// requests and is adoptable after login.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cartCookieName)
		if err != nil || token == "" {
			token = uuid.NewString()
			c.SetCookie(cartCookieName, token, cartCookieAge, "/", "", false, true)
		}
		c.Set(CartTokenContextKey, token)
		c.Next()
	}
}
