package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/wishlist"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type WishlistHandler struct {
	Wishlist *wishlist.Service
	Flash    *flash.Codec
}

func NewWishlistHandler(svc *wishlist.Service, fl *flash.Codec) *WishlistHandler {
	return &WishlistHandler{Wishlist: svc, Flash: fl}
}

func (h *WishlistHandler) Show(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	lines, err := h.Wishlist.Lines(c.Request.Context(), u.ID)
	if err != nil {
		if apperr.IsAuthFailure(err) {
			render.AuthFailure(c, h.Flash)
			return
		}
		middleware.Fail(c, err)
		return
	}

	vm := view.WishlistPage{Page: pageVM(c, "Wishlist")}
	for _, l := range lines {
		vm.Items = append(vm.Items, view.WishlistLine{
			ItemID:    l.Item.ID,
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Team:      l.Product.Team,
			Price:     view.Money(l.Product.Price),
		})
	}
	render.Page(c, http.StatusOK, "wishlist", vm)
}

// Toggle flips a product's wishlist membership and returns to where the
// user came from.
func (h *WishlistHandler) Toggle(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	productID, ok := parseID(c.PostForm("product_id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	dest := normalizeReturnTo(c.PostForm("return_to"))
	if dest == "" {
		dest = fmt.Sprintf("/products/%d", productID)
	}

	added, err := h.Wishlist.Toggle(c.Request.Context(), u.ID, productID)
	if err != nil {
		if apperr.IsAuthFailure(err) {
			render.AuthFailure(c, h.Flash)
			return
		}
		render.RedirectWithFlash(c, h.Flash, dest, view.FlashError, apperr.PublicMessage(err))
		return
	}

	msg := "Removed from wishlist."
	if added {
		msg = "Added to wishlist."
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, msg)
}
