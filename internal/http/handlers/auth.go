package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/render"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/sessioncookie"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/validation"
	authmod "github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/auth"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type AuthHandler struct {
	Auth      *authmod.Service
	API       *backend.Client
	Flash     *flash.Codec
	CartCount *sessioncookie.CartCountCodec
	Limiter   *middleware.LoginRateLimiter
	Secure    bool
}

func NewAuthHandler(svc *authmod.Service, api *backend.Client, fl *flash.Codec, cc *sessioncookie.CartCountCodec, rl *middleware.LoginRateLimiter, secure bool) *AuthHandler {
	return &AuthHandler{Auth: svc, API: api, Flash: fl, CartCount: cc, Limiter: rl, Secure: secure}
}

type loginInput struct {
	Email    string `form:"email" binding:"required,email,max=255"`
	Password string `form:"password" binding:"required,min=1,max=255"`
}

func (h *AuthHandler) LoginGet(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	render.Page(c, http.StatusOK, "login", view.LoginPage{
		Page:     pageVM(c, "Log in"),
		ReturnTo: normalizeReturnTo(c.Query("return_to")),
	})
}

func (h *AuthHandler) LoginPost(c *gin.Context) {
	returnTo := normalizeReturnTo(c.PostForm("return_to"))

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		render.Page(c, http.StatusBadRequest, "login", view.LoginPage{
			Page:     pageVM(c, "Log in"),
			Form:     view.LoginForm{Email: in.Email},
			ReturnTo: returnTo,
			Errors:   errs,
		})
		return
	}

	ip := c.ClientIP()
	if !h.Limiter.Allow(ip) {
		render.Page(c, http.StatusTooManyRequests, "login", view.LoginPage{
			Page:     pageVM(c, "Log in"),
			Form:     view.LoginForm{Email: in.Email},
			ReturnTo: returnTo,
			PageErr:  "Too many attempts. Wait a minute and try again.",
		})
		return
	}

	_, cookies, err := h.Auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		h.Limiter.RecordFailure(ip)
		// credentials problem: page-level message, not a field error
		render.Page(c, http.StatusUnauthorized, "login", view.LoginPage{
			Page:     pageVM(c, "Log in"),
			Form:     view.LoginForm{Email: in.Email},
			ReturnTo: returnTo,
			PageErr:  apperr.PublicMessage(err),
		})
		return
	}
	h.Limiter.Reset(ip)

	h.relaySessionCookie(c, cookies)

	dest := "/"
	if returnTo != "" {
		dest = returnTo
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Welcome back.")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// best effort remotely; the local cookies go away regardless
	h.Auth.Logout(c.Request.Context())

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.API.CookieName(), "", -1, "/", "", h.Secure, true)
	h.CartCount.Clear(c)

	render.RedirectWithFlash(c, h.Flash, "/", view.FlashInfo, "You are logged out.")
}

// relaySessionCookie re-issues the backend's session cookie on this origin.
func (h *AuthHandler) relaySessionCookie(c *gin.Context, cookies []*http.Cookie) {
	for _, ck := range cookies {
		if ck.Name != h.API.CookieName() {
			continue
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(ck.Name, ck.Value, ck.MaxAge, "/", "", h.Secure, true)
		return
	}
}
