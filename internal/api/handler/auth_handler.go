package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/tool2u/rental-platform/internal/api/metrics"
	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	session   ports.SessionService
	jwtSecret string
}

func NewAuthHandler(session ports.SessionService, jwtSecret string) *AuthHandler {
	return &AuthHandler{session: session, jwtSecret: jwtSecret}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// From is the path the actor was trying to reach before being sent to
	// the login page. Echoed back as redirect_to on success.
	From string `json:"from,omitempty"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
}

type authResponse struct {
	User       *domain.Identity `json:"user"`
	Token      string           `json:"token,omitempty"`
	RedirectTo string           `json:"redirect_to"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *domain.Identity `json:"user,omitempty"`
}

// Login authenticates an actor and establishes the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	identity, err := h.session.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid username or password"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	token, err := h.signToken(identity)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionAuthenticated.Set(1)
	return c.JSON(http.StatusOK, authResponse{
		User:       &identity,
		Token:      token,
		RedirectTo: safeRedirect(req.From),
	})
}

// Signup registers a new customer account and logs them in.
//
// @Summary      Register a new customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	identity, err := h.session.Signup(c.Request().Context(), ports.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, map[string]string{"error": "username already taken"})
		case errors.Is(err, domain.ErrUsernameReserved):
			metrics.SignupsTotal.WithLabelValues("reserved").Inc()
			return c.JSON(http.StatusConflict, map[string]string{"error": "username is reserved"})
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	token, err := h.signToken(identity)
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	metrics.SessionAuthenticated.Set(1)
	return c.JSON(http.StatusCreated, authResponse{
		User:       &identity,
		Token:      token,
		RedirectTo: "/",
	})
}

// Logout clears the session. Idempotent.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	metrics.SessionAuthenticated.Set(0)
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current authentication state.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	if identity, ok := h.session.Current(); ok {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: &identity})
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
}

func (h *AuthHandler) signToken(identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":      identity.ID,
		"username": identity.Username,
		"role":     string(identity.Role),
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}

// safeRedirect keeps redirects on-site: only absolute paths within the
// application are honoured, anything else falls back to the landing page.
func safeRedirect(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") {
		return "/"
	}
	return from
}
