package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "clinicdesk/internal/errors"
	"clinicdesk/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a doctor login request.
type LoginRequest struct {
	Email    string `json:"email" example:"house@clinic.local"`
	Password string `json:"password" example:"secret"`
}

// Login godoc
// @Summary Log a doctor in
// @Description Returns a signed token valid for one hour together with the doctor record.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, doctor, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Status: StatusOK,
		Token:  token,
		Doctor: doctor,
	})
}

// Logout godoc
// @Summary Revoke the current token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Status:  StatusOK,
		Message: "logged out successfully",
	})
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, found && token != ""
}
