package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
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

// normalizeReturnTo only allows same-site relative paths.
func normalizeReturnTo(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || !strings.HasPrefix(v, "/") || strings.HasPrefix(v, "//") {
		return ""
	}
	return v
}
