package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
)

type fakeSession struct {
	loading  bool
	identity *domain.Identity
}

func (f *fakeSession) Initialize(context.Context) error { return nil }
func (f *fakeSession) Login(context.Context, string, string) (domain.Identity, error) {
	return domain.Identity{}, domain.ErrInvalidCredentials
}
func (f *fakeSession) Signup(context.Context, ports.SignupInput) (domain.Identity, error) {
	return domain.Identity{}, domain.ErrUserExists
}
func (f *fakeSession) Logout(context.Context) { f.identity = nil }
func (f *fakeSession) Current() (domain.Identity, bool) {
	if f.identity == nil {
		return domain.Identity{}, false
	}
	return *f.identity, true
}
func (f *fakeSession) IsAuthenticated() bool { _, ok := f.Current(); return ok }
func (f *fakeSession) IsLoading() bool       { return f.loading }

func TestGuard_AllowsAuthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/basket", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	session := &fakeSession{identity: &domain.Identity{ID: "u1", Username: "alice", Role: domain.RoleCustomer}}

	called := false
	handler := Guard(session, "/login")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_RedirectsAnonymousWithOriginalPath(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Guard(&fakeSession{}, "/login")(func(c echo.Context) error {
		t.Fatalf("protected content must not render")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login?from=%2Fv1%2Forders" {
		t.Fatalf("unexpected redirect target: %q", loc)
	}
}

func TestGuard_WaitsForLoading(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/basket", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Still loading: neither the protected content nor a redirect.
	handler := Guard(&fakeSession{loading: true}, "/login")(func(c echo.Context) error {
		t.Fatalf("protected content must not render while loading")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while loading, got %v", err)
	}
	if rec.Header().Get(echo.HeaderLocation) != "" {
		t.Fatalf("no redirect may be issued while loading")
	}
}
