package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
)

// SessionCfg holds configuration for the session middleware.
type SessionCfg struct {
	API *backend.Client
	Log *slog.Logger
}

// Session resolves the browser's store-API session cookie into the current
// user by probing the auth status endpoint once per request. The raw cookie
// is stashed in the request context so every outbound API call carries it.
//
// Any probe failure, including a network one, means anonymous; only a clean
// 401 clears the stale cookie.
func Session(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cfg.API.CookieName())
		if err != nil || raw == "" {
			c.Next()
			return
		}

		ctx := backend.WithSession(c.Request.Context(), raw)
		c.Request = c.Request.WithContext(ctx)

		u, err := cfg.API.AuthStatus(ctx)
		if err != nil {
			if ae, ok := apperr.As(err); ok && ae.Kind == apperr.Unauthorized {
				c.SetCookie(cfg.API.CookieName(), "", -1, "/", "", false, true)
			} else {
				cfg.Log.Warn("auth status probe failed",
					"request_id", GetRequestID(c), "err", err)
			}
			c.Next()
			return
		}

		c.Set("user_id", u.ID)
		c.Set("user_email", u.Email)
		c.Set("user_role", u.Role)

		c.Next()
	}
}

// ContextUser represents the authenticated user stored in request context.
type ContextUser struct {
	ID    int64
	Email string
	Role  string
}

// CurrentUser retrieves the authenticated user from the gin context.
// Returns the user and true if authenticated, or zero value and false otherwise.
func CurrentUser(c *gin.Context) (ContextUser, bool) {
	idVal, exists := c.Get("user_id")
	if !exists {
		return ContextUser{}, false
	}
	id, ok := idVal.(int64)
	if !ok || id == 0 {
		return ContextUser{}, false
	}

	var email, role string
	if v, ok := c.Get("user_email"); ok && v != nil {
		email, _ = v.(string)
	}
	if v, ok := c.Get("user_role"); ok && v != nil {
		role, _ = v.(string)
	}
	return ContextUser{ID: id, Email: email, Role: role}, true
}
