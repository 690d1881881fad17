package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/sessioncookie"
)

const cartCountKey = "cart_count"

// CartCount exposes the signed cart badge cookie to every page render.
// Handlers that mutate the cart refresh the cookie themselves.
func CartCount(codec *sessioncookie.CartCountCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if v, ok := codec.Get(c); ok {
			n = v
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
