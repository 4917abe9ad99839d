package handler

import (
	"log/slog"
	"net/http"

	"labgas/internal/delivery/api/middleware"
	"labgas/internal/delivery/api/response"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves /api/auth.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	Role     string `json:"role" validate:"omitempty,oneof=viewer admin"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingCredentials
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token": output.Token,
		"user":  output.User,
	})
}

// Register creates an account with the identity provider.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]string{"user_id": user.ID.String()})
}

// Logout acknowledges the client discarding its token. Tokens are stateless.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Logout realizado")
}

// Me returns the caller's identity.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	return response.Success(c, http.StatusOK, identity)
}

// ResetPassword asks the identity provider to send a recovery email.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Email de recuperação enviado")
}
