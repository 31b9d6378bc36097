package handler

import (
	"net/http"

	"markd/internal/delivery/http/middleware"
	"markd/internal/delivery/http/response"
	"markd/internal/domain/entity"
	domainerrors "markd/internal/domain/errors"
	"markd/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler handles profile requests for the authenticated user.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// userProfileResponse is the public view of a user. The password hash never
// appears in any response body.
type userProfileResponse struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	MiddleName string `json:"middlename,omitempty"`
}

func toUserProfileResponse(user *entity.User) *userProfileResponse {
	return &userProfileResponse{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		MiddleName: user.MiddleName,
	}
}

// GetProfile returns the caller's own profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(int64)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	user, err := h.userUsecase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserProfileResponse(user))
}

// EditProfile applies a partial update to the caller's own profile.
func (h *UserHandler) EditProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(int64)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	input := new(usecase.EditUserInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(input); err != nil {
		return err
	}

	user, err := h.userUsecase.EditUser(c.Request().Context(), userID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserProfileResponse(user))
}
