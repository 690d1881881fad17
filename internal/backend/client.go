package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
)

// Client talks to the store API. Every piece of business truth (inventory,
// pricing, discounts, orders, auth) lives behind it; this application only
// calls and renders.
//
// Semantics shared by all calls:
//   - the browser session cookie is forwarded when present in the context
//   - JSON in, JSON out; non-2xx bodies are read as plain text
//   - 401/403 map to apperr.Unauthorized/Forbidden so handlers can redirect
//   - no retries, no backoff; a transport failure is apperr.Unavailable
type Client struct {
	baseURL    string
	cookieName string
	http       *http.Client
	log        *slog.Logger
}

func New(baseURL, cookieName string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cookieName: cookieName,
		http:       &http.Client{Timeout: timeout},
		log:        log,
	}
}

// CookieName is the name of the backend session cookie relayed to the browser.
func (c *Client) CookieName() string { return c.cookieName }

type sessionKey struct{}

// WithSession stores the raw session cookie value so outbound calls carry it.
func WithSession(ctx context.Context, value string) context.Context {
	return context.WithValue(ctx, sessionKey{}, value)
}

func sessionFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(sessionKey{}).(string)
	return v, ok && v != ""
}

// send performs the request and returns the raw response. Callers that only
// need a decoded body use do; login/logout need the Set-Cookie headers.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, apperr.Wrap(err)
		}
		rd = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if sess, ok := sessionFrom(ctx); ok {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: sess})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("store api unreachable", "method", method, "path", path, "err", err)
		return nil, apperr.UnavailableErr("The store is temporarily unavailable.", err)
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(method, path, resp)
	}
	if out == nil {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(fmt.Errorf("decode %s %s: %w", method, path, err))
	}
	return nil
}

func (c *Client) statusError(method, path string, resp *http.Response) error {
	msg := readErrorText(resp.Body)
	c.log.Warn("store api error",
		"method", method, "path", path, "status", resp.StatusCode, "body", msg)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperr.UnauthorizedErr("Please log in to continue.")
	case resp.StatusCode == http.StatusForbidden:
		return apperr.ForbiddenErr("You do not have access to this page.")
	case resp.StatusCode == http.StatusNotFound:
		return apperr.NotFoundErr("Not found.")
	case resp.StatusCode == http.StatusConflict:
		return apperr.ConflictErr(orGeneric(msg))
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return apperr.InvalidErr(orGeneric(msg), nil)
	default:
		return apperr.Wrap(fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode))
	}
}

// decodeOrEmpty tolerates endpoints that answer 2xx with an empty body.
func decodeOrEmpty(r io.Reader, out any) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return apperr.Wrap(err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

// The store API returns plain-text error bodies on failure.
func readErrorText(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4<<10))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func orGeneric(msg string) string {
	if msg == "" {
		return "The request could not be completed."
	}
	return msg
}
