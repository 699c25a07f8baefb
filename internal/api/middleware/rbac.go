package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC gates a staff route on the "role" claim that Auth copies out of the
// bearer token into the request context. Staff tokens carry driver, owner, or
// admin; a request whose role is not in the allow list is rejected with 403
// before the handler runs. A missing or non-string role counts as no role at
// all, so RBAC without a preceding Auth rejects everything.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
