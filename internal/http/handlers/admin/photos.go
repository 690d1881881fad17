package admin

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/photos"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/products"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/storage"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

// 8 MiB is plenty for a product shot.
const maxUploadBytes = 8 << 20

type PhotosHandler struct {
	Photos   *photos.Service
	Products *products.Service
	Store    storage.Storage
	Flash    *flash.Codec
	Log      *slog.Logger
}

func NewPhotosHandler(ph *photos.Service, pr *products.Service, st storage.Storage, fl *flash.Codec, log *slog.Logger) *PhotosHandler {
	return &PhotosHandler{Photos: ph, Products: pr, Store: st, Flash: fl, Log: log}
}

// Index lists products; with ?product_id= it also shows that product's
// gallery and the add-photo forms.
func (h *PhotosHandler) Index(c *gin.Context) {
	productID, _ := parseID(c.Query("product_id"))
	h.renderIndex(c, http.StatusOK, productID, nil)
}

// AddByURL registers an externally hosted photo.
func (h *PhotosHandler) AddByURL(c *gin.Context) {
	productID, ok := parseID(c.PostForm("product_id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	rawURL := c.PostForm("photo_url")
	if !photos.ValidURL(rawURL) {
		h.renderIndex(c, http.StatusBadRequest, productID, map[string]string{
			"photo_url": "Enter a valid http or https URL.",
		})
		return
	}

	h.create(c, productID, rawURL)
}

// Upload stores the file through the configured storage driver and registers
// the resulting URL as a photo.
func (h *PhotosHandler) Upload(c *gin.Context) {
	productID, ok := parseID(c.PostForm("product_id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		h.renderIndex(c, http.StatusBadRequest, productID, map[string]string{
			"photo": "Choose a file to upload.",
		})
		return
	}
	if file.Size > maxUploadBytes {
		h.renderIndex(c, http.StatusBadRequest, productID, map[string]string{
			"photo": "The file is too large (8 MB max).",
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer src.Close()

	res, err := h.Store.Put(c.Request.Context(), src, storage.PutInput{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
	})
	if err != nil {
		h.Log.Error("photo upload failed", "product_id", productID, "error", err)
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.create(c, productID, res.URL)
}

func (h *PhotosHandler) create(c *gin.Context, productID int64, url string) {
	dest := photosDest(productID)
	in := backend.PhotoInput{
		ProductID:    productID,
		PhotoURL:     url,
		IsPrimary:    c.PostForm("is_primary") == "on",
		DisplayOrder: parseInt(c.PostForm("display_order"), 0),
	}
	if _, err := h.Photos.Save(c.Request.Context(), 0, in); err != nil {
		failOrRedirect(c, h.Flash, err, dest)
		return
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Photo added.")
}

// SetPrimary promotes one photo; the service demotes the current primary
// before saving.
func (h *PhotosHandler) SetPrimary(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Photo not found."))
		return
	}
	productID, ok := parseID(c.PostForm("product_id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	dest := photosDest(productID)

	gallery, err := h.Photos.Gallery(c.Request.Context(), productID)
	if err != nil {
		failOrRedirect(c, h.Flash, err, dest)
		return
	}
	var target *backend.ProductPhoto
	for i := range gallery {
		if gallery[i].ID == id {
			target = &gallery[i]
			break
		}
	}
	if target == nil {
		render.RedirectWithFlash(c, h.Flash, dest, view.FlashError, "Photo not found.")
		return
	}

	in := backend.PhotoInput{
		ProductID:    target.ProductID,
		PhotoURL:     target.PhotoURL,
		IsPrimary:    true,
		DisplayOrder: target.DisplayOrder,
	}
	if _, err := h.Photos.Save(c.Request.Context(), id, in); err != nil {
		failOrRedirect(c, h.Flash, err, dest)
		return
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Primary photo updated.")
}

func (h *PhotosHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Photo not found."))
		return
	}
	productID, _ := parseID(c.PostForm("product_id"))
	dest := photosDest(productID)

	if err := h.Photos.Delete(c.Request.Context(), id); err != nil {
		failOrRedirect(c, h.Flash, err, dest)
		return
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Photo deleted.")
}

func (h *PhotosHandler) renderIndex(c *gin.Context, status int, productID int64, errs map[string]string) {
	list, err := h.Products.List(c.Request.Context(), "")
	if err != nil {
		failOrRedirect(c, h.Flash, err, "/admin")
		return
	}

	vm := view.AdminPhotosPage{Page: pageVM(c, "Product photos"), ProductID: productID, Errors: errs}
	for _, p := range list {
		vm.Products = append(vm.Products, mapProductRow(p))
	}

	if productID > 0 {
		gallery, err := h.Photos.Gallery(c.Request.Context(), productID)
		if err != nil {
			failOrRedirect(c, h.Flash, err, "/admin/photos")
			return
		}
		for _, p := range gallery {
			vm.Photos = append(vm.Photos, view.AdminPhotoRow{
				ID:           p.ID,
				PhotoURL:     p.PhotoURL,
				IsPrimary:    p.IsPrimary,
				DisplayOrder: p.DisplayOrder,
			})
		}
	}
	render.Page(c, status, "admin_photos", vm)
}

func photosDest(productID int64) string {
	if productID <= 0 {
		return "/admin/photos"
	}
	return fmt.Sprintf("/admin/photos?product_id=%d", productID)
}
