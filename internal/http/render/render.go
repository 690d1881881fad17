package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

// Page renders a named template with its view model.
func Page(c *gin.Context, status int, name string, vm any) {
	c.HTML(status, name, vm)
}

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}

// AuthFailure handles a 401/403 coming back from the store API the same way
// everywhere: a notification plus a redirect to the login page, without
// rendering any collection state.
func AuthFailure(c *gin.Context, codec *flash.Codec) {
	RedirectWithFlash(c, codec, "/login", view.FlashWarning, "Your session has expired. Please log in again.")
	c.Abort()
}
