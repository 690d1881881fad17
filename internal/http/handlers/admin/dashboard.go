package admin

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/orders"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/products"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/users"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

// DashboardHandler renders the admin landing page with headline counts.
type DashboardHandler struct {
	Products *products.Service
	Orders   *orders.Service
	Users    *users.Service
	Log      *slog.Logger
}

func (h *DashboardHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	vm := view.AdminDashboardPage{Page: pageVM(c, "Admin")}

	if list, err := h.Products.List(ctx, ""); err == nil {
		vm.ProductCount = len(list)
	} else {
		h.Log.Warn("admin dashboard product count failed", "error", err)
	}
	if list, err := h.Orders.AdminList(ctx); err == nil {
		vm.OrderCount = len(list)
		vm.PendingCount = len(orders.Pending(list))
	} else {
		h.Log.Warn("admin dashboard order count failed", "error", err)
	}
	if list, err := h.Users.List(ctx); err == nil {
		vm.UserCount = len(list)
	} else {
		h.Log.Warn("admin dashboard user count failed", "error", err)
	}

	render.Page(c, http.StatusOK, "admin_dashboard", vm)
}
