package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

// RequireAdmin:
// - no session: redirect to login (with return_to) + flash
// - session but not admin: SSR -> home redirect + flash, JSON -> 403
func RequireAdmin(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":      "authentication required",
					"request_id": GetRequestID(c),
				})
				return
			}

			returnTo := c.Request.URL.RequestURI()
			SetFlashCookie(c, flashCodec, view.Flash{
				Kind:    view.FlashWarning,
				Message: "Log in to reach the admin console.",
			})
			c.Redirect(http.StatusFound, "/login?return_to="+url.QueryEscape(returnTo))
			c.Abort()
			return
		}

		if u.Role != backend.RoleAdmin {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":      "forbidden",
					"request_id": GetRequestID(c),
				})
				return
			}

			SetFlashCookie(c, flashCodec, view.Flash{
				Kind:    view.FlashError,
				Message: "You do not have access to this page (admin required).",
			})
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
