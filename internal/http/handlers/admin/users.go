package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/validation"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/users"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type UsersHandler struct {
	Users *users.Service
	Flash *flash.Codec
}

func NewUsersHandler(svc *users.Service, fl *flash.Codec) *UsersHandler {
	return &UsersHandler{Users: svc, Flash: fl}
}

type userEmailInput struct {
	Email string `form:"email" binding:"required,email"`
	Role  string `form:"role" binding:"required,oneof=USER ADMIN"`
}

func (h *UsersHandler) List(c *gin.Context) {
	h.renderList(c, http.StatusOK, 0, nil)
}

// Edit shows the list with one row expanded into an email form.
func (h *UsersHandler) Edit(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("User not found."))
		return
	}
	h.renderList(c, http.StatusOK, id, nil)
}

func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("User not found."))
		return
	}

	var in userEmailInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderList(c, http.StatusBadRequest, id, validation.FromBindError(err, &in))
		return
	}

	if _, err := h.Users.UpdateEmail(c.Request.Context(), id, in.Email, in.Role); err != nil {
		h.failOrRedirect(c, err, "/admin/users")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/users", view.FlashSuccess, "User updated.")
}

func (h *UsersHandler) ToggleRole(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("User not found."))
		return
	}
	email := strings.TrimSpace(c.PostForm("email"))
	role := c.PostForm("role")

	if _, err := h.Users.ToggleRole(c.Request.Context(), id, email, role); err != nil {
		h.failOrRedirect(c, err, "/admin/users")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/users", view.FlashSuccess, "Role updated.")
}

func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("User not found."))
		return
	}

	// Deleting your own account from the console would drop the session
	// mid-request; refuse it.
	if me, ok := middleware.CurrentUser(c); ok && me.ID == id {
		render.RedirectWithFlash(c, h.Flash, "/admin/users", view.FlashError, "You cannot delete your own account.")
		return
	}

	if err := h.Users.Delete(c.Request.Context(), id); err != nil {
		h.failOrRedirect(c, err, "/admin/users")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin/users", view.FlashSuccess, "User deleted.")
}

func (h *UsersHandler) renderList(c *gin.Context, status int, editingID int64, errs validation.FieldErrors) {
	list, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.failOrRedirect(c, err, "/admin")
		return
	}

	vm := view.AdminUsersPage{Page: pageVM(c, "Users"), Errors: errs}
	for _, u := range list {
		row := view.AdminUserRow{ID: u.ID, Email: u.Email, Role: u.Role}
		vm.Users = append(vm.Users, row)
		if u.ID == editingID {
			edit := row
			vm.Editing = &edit
		}
	}
	render.Page(c, status, "admin_users", vm)
}

func (h *UsersHandler) failOrRedirect(c *gin.Context, err error, dest string) {
	failOrRedirect(c, h.Flash, err, dest)
}
