package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/flash"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testCodec() *flash.Codec {
	return flash.NewCodec([]byte("test-secret"), "flash", false)
}

func asUser(id int64, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("user_email", "fan@club.ro")
		c.Set("user_role", role)
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/cart", RequireAuth(testCodec()), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login?return_to=%2Fcart", w.Header().Get("Location"))
	require.Contains(t, w.Header().Get("Set-Cookie"), "flash=")
}

func TestRequireAuthJSONGets401(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/cart", RequireAuth(testCodec()), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Accept", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "authentication required", body["error"])
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/cart", asUser(7, backend.RoleUser), RequireAuth(testCodec()), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRedirectsNonAdminHome(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/admin", asUser(7, backend.RoleUser), RequireAdmin(testCodec()), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/admin", asUser(1, backend.RoleAdmin), RequireAdmin(testCodec()), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSessionResolvesCookieToUser(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("session")
		require.NoError(t, err)
		require.Equal(t, "valid", ck.Value)
		_ = json.NewEncoder(w).Encode(backend.User{ID: 7, Email: "fan@club.ro", Role: "USER"})
	}))
	t.Cleanup(api.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := backend.New(api.URL, "session", 2*time.Second, log)

	r := gin.New()
	r.Use(Session(SessionCfg{API: client, Log: log}))
	r.GET("/", func(c *gin.Context) {
		u, ok := CurrentUser(c)
		require.True(t, ok)
		c.String(http.StatusOK, u.Email)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "valid"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "fan@club.ro", w.Body.String())
}

func TestSessionClearsCookieOnClean401(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusUnauthorized)
	}))
	t.Cleanup(api.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := backend.New(api.URL, "session", 2*time.Second, log)

	r := gin.New()
	r.Use(Session(SessionCfg{API: client, Log: log}))
	r.GET("/", func(c *gin.Context) {
		_, ok := CurrentUser(c)
		require.False(t, ok)
		c.String(http.StatusOK, "anon")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "stale"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Set-Cookie"), "session=;")
}

func TestSessionAnonymousWithoutCookie(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no probe expected without a cookie")
	}))
	t.Cleanup(api.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := backend.New(api.URL, "session", 2*time.Second, log)

	r := gin.New()
	r.Use(Session(SessionCfg{API: client, Log: log}))
	r.GET("/", func(c *gin.Context) {
		_, ok := CurrentUser(c)
		require.False(t, ok)
		c.String(http.StatusOK, "anon")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
