package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/discounts"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type CouponsHandler struct {
	Discounts *discounts.Service
	Flash     *flash.Codec
}

func NewCouponsHandler(svc *discounts.Service, fl *flash.Codec) *CouponsHandler {
	return &CouponsHandler{Discounts: svc, Flash: fl}
}

func (h *CouponsHandler) List(c *gin.Context) {
	h.renderList(c, http.StatusOK, 0, nil)
}

func (h *CouponsHandler) Edit(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Coupon not found."))
		return
	}
	h.renderList(c, http.StatusOK, id, nil)
}

func (h *CouponsHandler) Create(c *gin.Context) {
	h.save(c, 0)
}

func (h *CouponsHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Coupon not found."))
		return
	}
	h.save(c, id)
}

// save runs create and update through the same percentage-range validation
// so an out-of-range value never reaches the store API.
func (h *CouponsHandler) save(c *gin.Context, id int64) {
	in := backend.DiscountInput{
		Code:               c.PostForm("code"),
		DiscountPercentage: parseInt(c.PostForm("discount_percentage"), -1),
		Active:             c.PostForm("active") == "on",
	}

	if errs := discounts.Validate(in); len(errs) > 0 {
		h.renderList(c, http.StatusBadRequest, id, errs)
		return
	}

	if _, err := h.Discounts.Save(c.Request.Context(), id, in); err != nil {
		failOrRedirect(c, h.Flash, err, "/admin/coupons")
		return
	}
	msg := "Coupon created."
	if id > 0 {
		msg = "Coupon updated."
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/coupons", view.FlashSuccess, msg)
}

func (h *CouponsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Coupon not found."))
		return
	}

	if err := h.Discounts.Delete(c.Request.Context(), id); err != nil {
		failOrRedirect(c, h.Flash, err, "/admin/coupons")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/coupons", view.FlashSuccess, "Coupon deleted.")
}

func (h *CouponsHandler) renderList(c *gin.Context, status int, editingID int64, errs map[string]string) {
	list, err := h.Discounts.List(c.Request.Context())
	if err != nil {
		failOrRedirect(c, h.Flash, err, "/admin")
		return
	}

	vm := view.AdminCouponsPage{Page: pageVM(c, "Coupons"), Errors: errs}
	for _, d := range list {
		row := view.AdminCouponRow{
			ID:         d.ID,
			Code:       d.Code,
			Percentage: d.DiscountPercentage,
			Active:     d.Active,
		}
		vm.Coupons = append(vm.Coupons, row)
		if d.ID == editingID {
			edit := row
			vm.Editing = &edit
		}
	}
	render.Page(c, status, "admin_coupons", vm)
}
