package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

// CookieHelper manages the authentication cookie.
type CookieHelper struct {
	secure bool
}

// NewCookieHelper creates a cookie helper. secure should be true in production.
func NewCookieHelper(secure bool) *CookieHelper {
	return &CookieHelper{secure: secure}
}

// SetAuthCookie attaches the session token cookie to the response.
func (h *CookieHelper) SetAuthCookie(c echo.Context, token string) {
	h.setCookie(c, token, int(TokenExpiry.Seconds()))
}

// ClearAuthCookie removes the session token cookie.
func (h *CookieHelper) ClearAuthCookie(c echo.Context) {
	h.setCookie(c, "", -1)
}

func (h *CookieHelper) setCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true, // always true for auth cookies
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
