package sessioncookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrInvalid = errors.New("invalid cart count cookie")

// CartCountCodec caches the cart badge count in a signed cookie so the navbar
// does not hit the store API on every page load. The value is refreshed after
// each cart mutation and cleared on logout and after checkout.
type CartCountCodec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func NewCartCount(secret []byte, name string, secure bool) *CartCountCodec {
	return &CartCountCodec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: count.base64(hmac(count))
func (c *CartCountCodec) Encode(count int) string {
	v := strconv.Itoa(count)
	return v + "." + sign(c.Secret, v)
}

func (c *CartCountCodec) Decode(v string) (int, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return 0, ErrInvalid
	}
	if !verify(c.Secret, parts[0], parts[1]) {
		return 0, ErrInvalid
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 0 {
		return 0, ErrInvalid
	}
	return n, nil
}

func (c *CartCountCodec) Get(ctx *gin.Context) (int, bool) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return 0, false
	}
	n, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return 0, false
	}
	return n, true
}

func (c *CartCountCodec) Set(ctx *gin.Context, count int) {
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, c.Encode(count), maxAge, "/", "", c.Secure, true)
}

func (c *CartCountCodec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
