// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"markd/internal/domain/entity"
)

// EditUserInput defines the partial profile fields accepted by PATCH /users.
// Only non-nil fields are applied; email and password are not editable here.
type EditUserInput struct {
	FirstName  *string `json:"firstname,omitempty" validate:"omitempty,min=1"`
	LastName   *string `json:"lastname,omitempty" validate:"omitempty,min=1"`
	MiddleName *string `json:"middlename,omitempty"`
}

// UserUsecase defines the interface for profile-related business operations.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
	EditUser(ctx context.Context, userID int64, input *EditUserInput) (*entity.User, error)
}
