// Package handler contains the HTTP handlers registered by the router.
package handler

import (
	"net/http"

	"markd/internal/delivery/http/response"
	domainerrors "markd/internal/domain/errors"
	"markd/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Signup registers a new account and returns a fresh access token.
func (h *AuthHandler) Signup(c echo.Context) error {
	input := new(usecase.SignupInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(input); err != nil {
		return err
	}

	token, err := h.authUsecase.Signup(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, token)
}

// Login verifies credentials and returns a fresh access token.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(input); err != nil {
		return err
	}

	token, err := h.authUsecase.Login(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, token)
}
