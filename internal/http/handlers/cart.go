package handlers

import (
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
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type CartHandler struct {
	Cart      *cartmod.Service
	Flash     *flash.Codec
	CartCount *sessioncookie.CartCountCodec
	Detail    *ProductDetailHandler
}

func NewCartHandler(svc *cartmod.Service, fl *flash.Codec, cc *sessioncookie.CartCountCodec, detail *ProductDetailHandler) *CartHandler {
	return &CartHandler{Cart: svc, Flash: fl, CartCount: cc, Detail: detail}
}

func (h *CartHandler) Show(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	crt, err := h.Cart.ForUser(c.Request.Context(), u.ID)
	if err != nil {
		if apperr.IsAuthFailure(err) {
			render.AuthFailure(c, h.Flash)
			return
		}
		middleware.Fail(c, err)
		return
	}

	// keep the badge honest after server-side changes
	h.CartCount.Set(c, cartmod.Count(crt))

	render.Page(c, http.StatusOK, "cart", view.CartPage{
		Page:     pageVM(c, "Your cart"),
		Items:    mapCartLines(crt.Items),
		Count:    cartmod.Count(crt),
		Subtotal: view.Money(checkout.Subtotal(crt.Items)),
	})
}

// Add appends one item to the session user's cart. A validation failure
// re-renders the product page with the field annotated and no cart call made.
func (h *CartHandler) Add(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	productID, ok := parseID(c.PostForm("product_id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	var in addToCartInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		vm, verr := h.Detail.buildVM(c, productID, errs)
		if verr != nil {
			middleware.Fail(c, verr)
			return
		}
		render.Page(c, http.StatusBadRequest, "product_detail", vm)
		return
	}

	crt, err := h.Cart.Add(c.Request.Context(), u.ID, cartmod.AddInput{
		ProductID:    productID,
		Size:         in.Size,
		Quantity:     in.Quantity,
		PlayerName:   in.PlayerName,
		PlayerNumber: in.playerNumber(),
	})
	if err != nil {
		if apperr.IsAuthFailure(err) {
			render.AuthFailure(c, h.Flash)
			return
		}
		render.RedirectWithFlash(c, h.Flash, fmt.Sprintf("/products/%d", productID),
			view.FlashError, apperr.PublicMessage(err))
		return
	}

	h.CartCount.Set(c, cartmod.Count(crt))
	render.RedirectWithFlash(c, h.Flash, fmt.Sprintf("/products/%d", productID),
		view.FlashSuccess, "Added to cart.")
}

func mapCartLines(items []backend.CartItem) []view.CartLine {
	out := make([]view.CartLine, 0, len(items))
	for _, it := range items {
		q := it.Quantity
		if q < 1 {
			q = 1
		}
		out = append(out, view.CartLine{
			Name:     it.ProductName,
			Size:     it.Size,
			Quantity: it.Quantity,
			Player:   playerLabel(it.PlayerName, it.PlayerNumber),
			Unit:     view.Money(it.Price),
			Line:     view.Money(it.Price * float64(q)),
		})
	}
	return out
}

func playerLabel(name string, number int) string {
	if name == "" && number == 0 {
		return ""
	}
	if name == "" {
		return fmt.Sprintf("#%d", number)
	}
	if number == 0 {
		return name
	}
	return fmt.Sprintf("%s #%d", name, number)
}
