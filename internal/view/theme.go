package view

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Color themes. Dark is the default.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	ThemeCookie = "theme"
)

// Theme returns the visitor's theme from the theme cookie, defaulting to dark.
func Theme(c echo.Context) string {
	cookie, err := c.Cookie(ThemeCookie)
	if err != nil {
		return ThemeDark
	}
	return NormalizeTheme(cookie.Value)
}

// NormalizeTheme maps anything but "light" to the default dark theme.
func NormalizeTheme(t string) string {
	if t == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// NextTheme returns the theme a toggle switches to.
func NextTheme(t string) string {
	if NormalizeTheme(t) == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// SetTheme stores t in the theme cookie for one year.
func SetTheme(c echo.Context, t string) {
	c.SetCookie(&http.Cookie{
		Name:     ThemeCookie,
		Value:    NormalizeTheme(t),
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
