package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/events-api/internal/api/metrics"
	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

// AuthHandler handles student activation and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Activate handles POST /api/students/activate.
//
// @Summary      Activate a provisioned student account
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body  body      activateRequest  true  "Activation details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/students/activate [post]
func (h *AuthHandler) Activate(c echo.Context) error {
	var req activateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.authService.Activate(c.Request().Context(), ports.ActivateInput{
		Name:      req.Name,
		NIC:       req.NIC,
		StudentID: req.StudentID,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		metrics.ActivationsTotal.WithLabelValues(activationResult(err)).Inc()
		return err
	}

	metrics.ActivationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "activation successful"})
}

// Login handles POST /api/students/login.
//
// @Summary      Login and receive a bearer token
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/students/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, student, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		StudentID: student.ID,
		Name:      student.Name,
	})
}

func activationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotProvisioned):
		return "not_provisioned"
	case errors.Is(err, domain.ErrAlreadyActivated):
		return "already_activated"
	case errors.Is(err, domain.ErrEmailTaken):
		return "email_taken"
	default:
		return "error"
	}
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "rate_limited"
	default:
		return "error"
	}
}
