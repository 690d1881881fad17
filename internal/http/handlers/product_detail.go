package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/catalog"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/photos"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/products"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/wishlist"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

// ProductDetailHandler aggregates what the detail page needs: the product,
// its photo gallery, the size availability and, for a logged-in user, the
// wishlist membership.
type ProductDetailHandler struct {
	API      *backend.Client
	Products *products.Service
	Photos   *photos.Service
	Wishlist *wishlist.Service
}

func NewProductDetailHandler(api *backend.Client, p *products.Service, ph *photos.Service, w *wishlist.Service) *ProductDetailHandler {
	return &ProductDetailHandler{API: api, Products: p, Photos: ph, Wishlist: w}
}

func (h *ProductDetailHandler) Show(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	vm, err := h.buildVM(c, id, nil)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Page(c, http.StatusOK, "product_detail", vm)
}

func (h *ProductDetailHandler) buildVM(c *gin.Context, id int64, fieldErrs map[string]string) (view.ProductDetail, error) {
	ctx := c.Request.Context()

	p, err := h.Products.Get(ctx, id)
	if err != nil {
		return view.ProductDetail{}, err
	}

	gallery, err := h.Photos.Gallery(ctx, id)
	if err != nil {
		return view.ProductDetail{}, err
	}

	inv, err := h.API.GetProductInventory(ctx, id)
	if err != nil {
		return view.ProductDetail{}, err
	}

	vm := view.ProductDetail{
		Page:        pageVM(c, p.Name),
		ID:          p.ID,
		Name:        p.Name,
		Team:        p.Team,
		Description: p.Description,
		Price:       view.Money(p.Price),
		Licenced:    p.Licenced,
		Errors:      fieldErrs,
	}

	for _, ph := range gallery {
		vm.Photos = append(vm.Photos, ph.PhotoURL)
	}
	for _, s := range catalog.AvailableSizes(inv) {
		vm.Sizes = append(vm.Sizes, view.SizeOption{Size: s.Size, Available: s.Available})
	}

	if u, authed := middleware.CurrentUser(c); authed {
		in, err := h.Wishlist.Contains(ctx, u.ID, id)
		if err == nil {
			vm.InWishlist = in
		}
	}
	return vm, nil
}

// addToCartInput matches the detail page form. Size is validated against the
// fixed size table in the cart service.
type addToCartInput struct {
	Size         string `form:"size" binding:"required"`
	Quantity     int    `form:"quantity" binding:"required,gte=1,lte=10"`
	PlayerName   string `form:"player_name" binding:"omitempty,max=20"`
	PlayerNumber string `form:"player_number" binding:"omitempty"`
}

func (in addToCartInput) playerNumber() int {
	n, _ := strconv.Atoi(in.PlayerNumber)
	return n
}
