// Package web provides the HTTP JSON API for the mood-tunes server.
package web

import (
	"net/http"
	"time"
)

// Cookie names are part of the contract with the browser frontend.
// spotify_user_name is readable by client script; the rest are httpOnly.
const (
	stateCookie        = "spotify_auth_state"
	accessTokenCookie  = "spotify_access_token"
	refreshTokenCookie = "spotify_refresh_token"
	userNameCookie     = "spotify_user_name"
)

const (
	stateCookieTTL   = 10 * time.Minute
	refreshCookieTTL = 30 * 24 * time.Hour

	// defaultAccessTokenTTL is used when the provider response carries no
	// usable expiry.
	defaultAccessTokenTTL = time.Hour
)

// setCookie sets a SameSite=Lax cookie scoped to the whole site.
func (h *Handlers) setCookie(w http.ResponseWriter, name, value string, maxAge time.Duration, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: httpOnly,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	})
}

// clearCookie expires a cookie immediately. The httpOnly flag must match the
// one the cookie was set with, or some browsers treat it as a different cookie.
func (h *Handlers) clearCookie(w http.ResponseWriter, name string, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: httpOnly,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// cookieValue returns the named cookie's value, or "" when absent.
func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
