package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/products"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type HomeHandler struct {
	Products *products.Service
}

func NewHomeHandler(svc *products.Service) *HomeHandler {
	return &HomeHandler{Products: svc}
}

// Index shows a small selection of the catalog; the full list lives under
// /products. A backend failure degrades to an empty shelf instead of an
// error page.
func (h *HomeHandler) Index(c *gin.Context) {
	vm := view.ProductsPage{Page: pageVM(c, "Romanian Football Shop")}

	items, err := h.Products.List(c.Request.Context(), products.SortNameAsc)
	if err == nil {
		if len(items) > 8 {
			items = items[:8]
		}
		vm.Products = mapProductCards(items)
	}

	render.Page(c, http.StatusOK, "home", vm)
}
