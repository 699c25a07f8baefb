package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
)

// currentIdentity returns the session identity for guarded storefront routes.
// The Guard middleware has already rejected anonymous requests; an absent
// identity here means the session was cleared mid-request, which still must
// not reach a service call.
func currentIdentity(session ports.SessionService) (domain.Identity, error) {
	identity, ok := session.Current()
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return identity, nil
}
