package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skytails/internal/auth"
	apperrors "skytails/internal/errors"
	"skytails/internal/service"
)

// AuthHandler handles login, logout, and identity endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LogoutResponse acknowledges a logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("login: %v", err)
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, user)
}

// Me godoc
// @Summary Get the current identity
// @Description Returns the authenticated user, or null when no session is present. Never an error.
// @Tags auth
// @Produce json
// @Success 200 {object} model.User
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := auth.CurrentUser(c)
	if user == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary Destroy the current session
// @Description Idempotent: succeeds with or without an active session.
// @Tags auth
// @Produce json
// @Success 200 {object} LogoutResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			// The cookie is cleared regardless; the Redis key expires on its own.
			c.Logger().Errorf("logout: %v", err)
		}
	}
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, LogoutResponse{Success: true})
}
