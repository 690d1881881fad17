package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/products"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

// ProductsHandler handles the catalog listing and search.
type ProductsHandler struct {
	Products *products.Service
}

func NewProductsHandler(svc *products.Service) *ProductsHandler {
	return &ProductsHandler{Products: svc}
}

// List renders the full catalog, sorted client-side by the sort query param
// (name_asc, name_desc, price_asc, price_desc).
func (h *ProductsHandler) List(c *gin.Context) {
	sortKey := c.Query("sort")

	items, err := h.Products.List(c.Request.Context(), sortKey)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.Page(c, http.StatusOK, "products_index", view.ProductsPage{
		Page:     pageVM(c, "Products"),
		Products: mapProductCards(items),
		Sort:     sortKey,
	})
}

// Search handles the navbar search box submit.
func (h *ProductsHandler) Search(c *gin.Context) {
	query := c.Query("query")

	items, err := h.Products.Search(c.Request.Context(), query)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.Page(c, http.StatusOK, "products_index", view.ProductsPage{
		Page:     pageVM(c, "Search"),
		Products: mapProductCards(items),
		Query:    query,
	})
}

func mapProductCards(items []backend.Product) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		out = append(out, view.ProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Team:     p.Team,
			Price:    view.Money(p.Price),
			Licenced: p.Licenced,
		})
	}
	return out
}
