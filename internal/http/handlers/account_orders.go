package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	ordersmod "github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/orders"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type AccountOrdersHandler struct {
	Orders *ordersmod.Service
	Flash  *flash.Codec
}

func NewAccountOrdersHandler(svc *ordersmod.Service, fl *flash.Codec) *AccountOrdersHandler {
	return &AccountOrdersHandler{Orders: svc, Flash: fl}
}

// List is the user's order history, most recent first.
func (h *AccountOrdersHandler) List(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	items, err := h.Orders.ForUser(c.Request.Context(), u.ID)
	if err != nil {
		if apperr.IsAuthFailure(err) {
			render.AuthFailure(c, h.Flash)
			return
		}
		middleware.Fail(c, err)
		return
	}

	vm := view.AccountOrdersPage{Page: pageVM(c, "My orders")}
	for _, o := range items {
		vm.Orders = append(vm.Orders, mapOrderCard(o))
	}
	render.Page(c, http.StatusOK, "account_orders", vm)
}
