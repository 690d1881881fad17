package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/sessioncookie"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/validation"
	cartmod "github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/cart"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/checkout"
	ordersmod "github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/orders"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type CheckoutHandler struct {
	Cart      *cartmod.Service
	Checkout  *checkout.Service
	Orders    *ordersmod.Service
	Flash     *flash.Codec
	CartCount *sessioncookie.CartCountCodec
}

func NewCheckoutHandler(cart *cartmod.Service, co *checkout.Service, ord *ordersmod.Service, fl *flash.Codec, cc *sessioncookie.CartCountCodec) *CheckoutHandler {
	return &CheckoutHandler{Cart: cart, Checkout: co, Orders: ord, Flash: fl, CartCount: cc}
}

type checkoutInput struct {
	City       string `form:"city" binding:"required,min=2,max=100"`
	Street     string `form:"street" binding:"required,min=2,max=255"`
	Number     string `form:"number" binding:"required,max=16"`
	PostalCode string `form:"postal_code" binding:"required,min=4,max=10"`
	CouponCode string `form:"coupon_code" binding:"omitempty,max=32"`
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	h.renderCheckout(c, http.StatusOK, view.CheckoutForm{}, nil, "")
}

// ApplyCoupon re-renders the checkout with the coupon priced in. Validation
// is a read-only backend call; an unknown code keeps the subtotal intact.
func (h *CheckoutHandler) ApplyCoupon(c *gin.Context) {
	form := view.CheckoutForm{
		City:       c.PostForm("city"),
		Street:     c.PostForm("street"),
		Number:     c.PostForm("number"),
		PostalCode: c.PostForm("postal_code"),
		CouponCode: c.PostForm("coupon_code"),
	}
	h.renderCheckout(c, http.StatusOK, form, nil, "")
}

func (h *CheckoutHandler) Post(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in checkoutInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.renderCheckout(c, http.StatusBadRequest, formFromInput(in), errs, "")
		return
	}

	ctx := c.Request.Context()
	crt, err := h.Cart.ForUser(ctx, u.ID)
	if err != nil {
		h.failOrRedirect(c, err)
		return
	}
	if len(crt.Items) == 0 {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Your cart is empty.")
		return
	}

	// Re-validate the coupon at submit time; the stale preview from the
	// coupon step is never trusted.
	quote, err := h.Checkout.BuildQuote(ctx, crt, in.CouponCode)
	if err != nil {
		h.failOrRedirect(c, err)
		return
	}

	order, err := h.Checkout.Submit(ctx, u.ID, crt, checkout.Address{
		City:       in.City,
		Street:     in.Street,
		Number:     in.Number,
		PostalCode: in.PostalCode,
	}, quote.DiscountID)
	if err != nil {
		if errors.Is(err, checkout.ErrCartEmpty) {
			render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Your cart is empty.")
			return
		}
		if apperr.IsAuthFailure(err) {
			render.AuthFailure(c, h.Flash)
			return
		}
		h.renderCheckout(c, http.StatusBadGateway, formFromInput(in), nil, apperr.PublicMessage(err))
		return
	}

	// cart is cleared server-side after order creation
	h.CartCount.Clear(c)

	render.RedirectWithFlash(c, h.Flash, fmt.Sprintf("/checkout/confirmation/%d", order.ID),
		view.FlashSuccess, "Order placed.")
}

// Confirmation shows the backend's authoritative order, including its
// recomputed total.
func (h *CheckoutHandler) Confirmation(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}

	o, err := h.Orders.Get(c.Request.Context(), id)
	if err != nil {
		h.failOrRedirect(c, err)
		return
	}

	render.Page(c, http.StatusOK, "order_confirmation", view.OrderConfirmationPage{
		Page:  pageVM(c, "Order confirmed"),
		Order: mapOrderCard(o),
	})
}

func (h *CheckoutHandler) renderCheckout(c *gin.Context, status int, form view.CheckoutForm, errs map[string]string, pageErr string) {
	u, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	crt, err := h.Cart.ForUser(ctx, u.ID)
	if err != nil {
		h.failOrRedirect(c, err)
		return
	}
	if len(crt.Items) == 0 && status == http.StatusOK {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Your cart is empty.")
		return
	}

	quote, err := h.Checkout.BuildQuote(ctx, crt, form.CouponCode)
	couponMsg := ""
	if err != nil {
		// a failing coupon lookup never blocks the page
		quote = checkout.Quote{Subtotal: checkout.Subtotal(crt.Items), Total: checkout.Subtotal(crt.Items)}
		couponMsg = apperr.PublicMessage(err)
	} else if form.CouponCode != "" && !quote.Applied {
		couponMsg = "That coupon code is not valid."
	}

	render.Page(c, status, "checkout", view.CheckoutPage{
		Page: pageVM(c, "Checkout"),
		Form: form,
		Summary: view.CheckoutSummary{
			Lines:         mapCartLines(crt.Items),
			Subtotal:      view.Money(quote.Subtotal),
			Discount:      view.Money(quote.Discount),
			Total:         view.Money(quote.Total),
			DiscountPct:   quote.Pct,
			CouponApplied: quote.Applied,
		},
		Errors:    errs,
		CouponMsg: couponMsg,
		PageErr:   pageErr,
	})
}

func (h *CheckoutHandler) failOrRedirect(c *gin.Context, err error) {
	if apperr.IsAuthFailure(err) {
		render.AuthFailure(c, h.Flash)
		return
	}
	middleware.Fail(c, err)
}

func formFromInput(in checkoutInput) view.CheckoutForm {
	return view.CheckoutForm{
		City:       in.City,
		Street:     in.Street,
		Number:     in.Number,
		PostalCode: in.PostalCode,
		CouponCode: in.CouponCode,
	}
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
		card.Items = append(card.Items, view.OrderItemRow{
			Name:     it.ProductName,
			Size:     it.Size,
			Quantity: it.Quantity,
			Player:   playerLabel(it.PlayerName, it.PlayerNumber),
			Price:    view.Money(it.Price),
		})
	}
	return card
}
