package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/catalog"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/products"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

// StockHandler shows per-size availability as reported by the store API.
// Quantities are read-only here; stock movements happen on the backend.
type StockHandler struct {
	API      *backend.Client
	Products *products.Service
	Flash    *flash.Codec
}

func NewStockHandler(api *backend.Client, pr *products.Service, fl *flash.Codec) *StockHandler {
	return &StockHandler{API: api, Products: pr, Flash: fl}
}

func (h *StockHandler) Index(c *gin.Context) {
	list, err := h.Products.List(c.Request.Context(), "")
	if err != nil {
		failOrRedirect(c, h.Flash, err, "/admin")
		return
	}

	vm := view.AdminStockPage{Page: pageVM(c, "Stock")}
	for _, p := range list {
		vm.Products = append(vm.Products, mapProductRow(p))
	}

	if productID, ok := parseID(c.Query("product_id")); ok {
		inv, err := h.API.GetProductInventory(c.Request.Context(), productID)
		if err != nil {
			failOrRedirect(c, h.Flash, err, "/admin/stock")
			return
		}
		vm.ProductID = productID
		for _, s := range catalog.AvailableSizes(inv) {
			vm.Rows = append(vm.Rows, view.AdminStockRow{
				Size:     s.Size,
				Quantity: s.Quantity,
				InStock:  s.Available,
			})
		}
	}
	render.Page(c, http.StatusOK, "admin_stock", vm)
}
