package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/multixy/storefront/internal/api/metrics"
	"github.com/multixy/storefront/internal/api/middleware"
	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
)

// refreshCookieName is the cookie carrying the refresh token. The cookie is
// the whole session: there is no server-side session table.
const refreshCookieName = "refresh_token"

// AuthHandler implements the session endpoints: login, refresh, logout and
// the identity echo on the protected route.
type AuthHandler struct {
	service    ports.AuthService
	refreshTTL time.Duration
	// secureCookies sets the Secure flag; on in production-like environments.
	secureCookies bool
}

func NewAuthHandler(service ports.AuthService, refreshTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, refreshTTL: refreshTTL, secureCookies: secureCookies}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	AccessToken string             `json:"accessToken"`
	User        *domain.PublicUser `json:"user"`
}

type refreshResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login authenticates a user and returns an access token; the refresh token
// travels only in an HTTP-only cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password, c.RealIP())
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("access").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("refresh").Inc()

	c.SetCookie(h.refreshCookie(result.RefreshToken, int(h.refreshTTL.Seconds())))

	return c.JSON(http.StatusOK, loginResponse{
		Success:     true,
		Message:     "login successful",
		AccessToken: result.AccessToken,
		User:        result.User,
	})
}

// Refresh mints a new access token from the refresh cookie. The refresh
// token itself is reused until its own expiry.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  refreshResponse
// @Failure      403  {object}  map[string]any
// @Router       /refresh-token [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return domain.ErrTokenMissing
	}

	access, err := h.service.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return err
	}
	metrics.TokensIssuedTotal.WithLabelValues("access").Inc()

	return c.JSON(http.StatusOK, refreshResponse{Success: true, AccessToken: access})
}

// Logout clears the refresh cookie. Idempotent: succeeds with or without an
// active session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Expire the cookie with matching attributes so the browser drops it.
	c.SetCookie(h.refreshCookie("", -1))

	email, _ := c.Get(middleware.ContextEmail).(string)
	h.service.RecordLogout(email, c.RealIP())

	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "logout successful"})
}

type identityResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role,omitempty"`
	} `json:"user"`
}

// Protected echoes the identity attached by the authorization gate.
//
// @Summary      Protected route
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  identityResponse
// @Failure      403  {object}  map[string]any
// @Router       /protected-route [get]
func (h *AuthHandler) Protected(c echo.Context) error {
	userID, email, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	resp := identityResponse{Success: true, Message: "access granted"}
	resp.User.ID = userID
	resp.User.Email = email
	resp.User.Role = role
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) refreshCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
