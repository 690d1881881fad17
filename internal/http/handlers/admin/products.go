package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/validation"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/products"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type ProductsHandler struct {
	Products *products.Service
	Flash    *flash.Codec
}

func NewProductsHandler(svc *products.Service, fl *flash.Codec) *ProductsHandler {
	return &ProductsHandler{Products: svc, Flash: fl}
}

type productInput struct {
	Name        string  `form:"name" binding:"required,max=120"`
	Description string  `form:"description" binding:"max=2000"`
	Price       float64 `form:"price" binding:"required,gt=0"`
	Team        string  `form:"team" binding:"required,max=80"`
	Licenced    bool    `form:"licenced"`
}

func (h *ProductsHandler) List(c *gin.Context) {
	h.renderList(c, http.StatusOK, 0, nil)
}

func (h *ProductsHandler) Edit(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	h.renderList(c, http.StatusOK, id, nil)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var in productInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderList(c, http.StatusBadRequest, 0, validation.FromBindError(err, &in))
		return
	}

	if _, err := h.Products.Create(c.Request.Context(), toProductInput(in)); err != nil {
		failOrRedirect(c, h.Flash, err, "/admin/products")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashSuccess, "Product created.")
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	var in productInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderList(c, http.StatusBadRequest, id, validation.FromBindError(err, &in))
		return
	}

	if _, err := h.Products.Update(c.Request.Context(), id, toProductInput(in)); err != nil {
		failOrRedirect(c, h.Flash, err, "/admin/products")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashSuccess, "Product updated.")
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	if err := h.Products.Delete(c.Request.Context(), id); err != nil {
		failOrRedirect(c, h.Flash, err, "/admin/products")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/products", view.FlashSuccess, "Product deleted.")
}

func (h *ProductsHandler) renderList(c *gin.Context, status int, editingID int64, errs validation.FieldErrors) {
	list, err := h.Products.List(c.Request.Context(), "")
	if err != nil {
		failOrRedirect(c, h.Flash, err, "/admin")
		return
	}

	vm := view.AdminProductsPage{Page: pageVM(c, "Products"), Errors: errs}
	for _, p := range list {
		row := mapProductRow(p)
		vm.Products = append(vm.Products, row)
		if p.ID == editingID {
			edit := row
			vm.Editing = &edit
		}
	}
	render.Page(c, status, "admin_products", vm)
}

func toProductInput(in productInput) backend.ProductInput {
	return backend.ProductInput{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Team:        in.Team,
		Licenced:    in.Licenced,
	}
}

func mapProductRow(p backend.Product) view.AdminProductRow {
	return view.AdminProductRow{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Team:        p.Team,
		Price:       view.Money(p.Price),
		PriceValue:  p.Price,
		Licenced:    p.Licenced,
	}
}
