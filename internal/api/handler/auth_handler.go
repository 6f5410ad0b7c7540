package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-system/internal/api/metrics"
	"github.com/userhub/identity-system/internal/core/ports"
)

// AuthHandler handles the public authentication endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns a token pair.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.NewUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return c.JSON(http.StatusOK, authResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		User:         toUserResponse(result.User),
	})
}

// Login authenticates a user and returns a token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return c.JSON(http.StatusOK, authResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		User:         toUserResponse(result.User),
	})
}

// Refresh exchanges a refresh token for a brand-new token pair. The
// consumed token is invalid from this point on.
//
// @Summary      Refresh the token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Refresh(c.Request().Context(), *req.RefreshToken)
	if err != nil {
		metrics.TokenRotationsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return err
	}

	metrics.TokenRotationsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return c.JSON(http.StatusOK, authResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		User:         toUserResponse(result.User),
	})
}

// Logout revokes a refresh token without issuing a replacement.
//
// @Summary      Logout
// @Tags         auth
// @Accept       json
// @Param        body  body  logoutRequest  true  "Refresh token to revoke"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.Revoke(c.Request().Context(), *req.RefreshToken); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
