package admin

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/validation"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/orders"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type OrdersHandler struct {
	Orders *orders.Service
	Flash  *flash.Codec
}

func NewOrdersHandler(svc *orders.Service, fl *flash.Codec) *OrdersHandler {
	return &OrdersHandler{Orders: svc, Flash: fl}
}

type orderAddressInput struct {
	City       string `form:"city" binding:"required,max=80"`
	Street     string `form:"street" binding:"required,max=120"`
	Number     string `form:"number" binding:"required,max=20"`
	PostalCode string `form:"postal_code" binding:"required,max=12"`
}

func (h *OrdersHandler) List(c *gin.Context) {
	h.renderList(c, false)
}

// Pending shows only orders still awaiting a decision, oldest first.
func (h *OrdersHandler) Pending(c *gin.Context) {
	h.renderList(c, true)
}

func (h *OrdersHandler) renderList(c *gin.Context, pendingOnly bool) {
	list, err := h.Orders.AdminList(c.Request.Context())
	if err != nil {
		failOrRedirect(c, h.Flash, err, "/admin")
		return
	}
	if pendingOnly {
		list = orders.Pending(list)
	}

	vm := view.AdminOrdersPage{Page: pageVM(c, "Orders"), PendingOnly: pendingOnly}
	for _, o := range list {
		vm.Orders = append(vm.Orders, mapOrderCard(o))
	}
	render.Page(c, http.StatusOK, "admin_orders", vm)
}

func (h *OrdersHandler) Show(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}
	h.renderDetail(c, http.StatusOK, id, nil)
}

// UpdateStatus moves a pending order to COMPLETED or CANCELED. Decided
// orders are final; the transition guard rejects everything else.
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}
	to := c.PostForm("status")
	dest := fmt.Sprintf("/admin/orders/%d", id)

	if _, err := h.Orders.UpdateStatus(c.Request.Context(), id, to); err != nil {
		if errors.Is(err, orders.ErrInvalidTransition) {
			render.RedirectWithFlash(c, h.Flash, dest, view.FlashError, "This order has already been decided.")
			return
		}
		failOrRedirect(c, h.Flash, err, dest)
		return
	}

	msg := "Order completed."
	if to == backend.OrderCanceled {
		msg = "Order canceled."
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/orders/pending", view.FlashSuccess, msg)
}

func (h *OrdersHandler) UpdateAddress(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}

	var in orderAddressInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderDetail(c, http.StatusBadRequest, id, validation.FromBindError(err, &in))
		return
	}

	update := backend.OrderUpdate{
		City:       in.City,
		Street:     in.Street,
		Number:     in.Number,
		PostalCode: in.PostalCode,
	}
	dest := fmt.Sprintf("/admin/orders/%d", id)
	if _, err := h.Orders.UpdateAddress(c.Request.Context(), id, update); err != nil {
		failOrRedirect(c, h.Flash, err, dest)
		return
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Delivery address updated.")
}

func (h *OrdersHandler) renderDetail(c *gin.Context, status int, id int64, errs validation.FieldErrors) {
	o, err := h.Orders.Get(c.Request.Context(), id)
	if err != nil {
		failOrRedirect(c, h.Flash, err, "/admin/orders")
		return
	}

	render.Page(c, status, "admin_order_detail", view.AdminOrderDetailPage{
		Page:       pageVM(c, fmt.Sprintf("Order #%d", o.ID)),
		Order:      mapOrderCard(o),
		City:       o.City,
		Street:     o.Street,
		Number:     o.Number,
		PostalCode: o.PostalCode,
		CanDecide:  o.Status == backend.OrderPending,
		Errors:     errs,
	})
}

func mapOrderCard(o backend.Order) view.OrderCard {
	card := view.OrderCard{
		ID:      o.ID,
		Status:  o.Status,
		Label:   view.StatusLabel(o.Status),
		Total:   view.Money(o.TotalPrice),
		Address: fmt.Sprintf("%s %s, %s %s", o.Street, o.Number, o.City, o.PostalCode),
	}
	for _, it := range o.OrderItems {
		row := view.OrderItemRow{
			Name:     it.ProductName,
			Size:     it.Size,
			Quantity: it.Quantity,
			Price:    view.Money(it.Price),
		}
		if it.PlayerName != "" {
			row.Player = fmt.Sprintf("%s #%d", it.PlayerName, it.PlayerNumber)
		}
		card.Items = append(card.Items, row)
	}
	return card
}
