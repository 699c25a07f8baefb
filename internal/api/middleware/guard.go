package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/tool2u/rental-platform/internal/core/ports"
)

// Guard gates protected routes on the session store. While the store is still
// initializing it renders neither the protected content nor a redirect; an
// unauthenticated request is redirected to the login path carrying the
// originally requested path so a successful login can return the actor there.
func Guard(session ports.SessionService, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if session.IsLoading() {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session initializing")
			}

			if !session.IsAuthenticated() {
				target := loginPath + "?from=" + url.QueryEscape(c.Request().URL.RequestURI())
				return c.Redirect(http.StatusFound, target)
			}

			return next(c)
		}
	}
}
