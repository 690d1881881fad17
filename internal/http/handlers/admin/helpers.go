package admin

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

func pageVM(c *gin.Context, title string) view.Page {
	p := view.Page{
		Title:     title,
		Flash:     middleware.GetFlash(c),
		CartCount: middleware.GetCartCount(c),
	}
	if u, ok := middleware.CurrentUser(c); ok {
		p.User = &view.SessionUser{ID: u.ID, Email: u.Email, Role: u.Role}
	}
	return p
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// failOrRedirect is the shared error path of the console: session loss
// bounces to login, expected store-API rejections come back as a flash on
// the originating screen, anything else reaches the error handler.
func failOrRedirect(c *gin.Context, fl *flash.Codec, err error, dest string) {
	if apperr.IsAuthFailure(err) {
		render.AuthFailure(c, fl)
		return
	}
	if ae, ok := apperr.As(err); ok {
		switch ae.Kind {
		case apperr.Invalid, apperr.Conflict, apperr.NotFound:
			render.RedirectWithFlash(c, fl, dest, view.FlashError, apperr.PublicMessage(err))
			return
		}
	}
	middleware.Fail(c, err)
}
