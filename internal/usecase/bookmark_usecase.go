// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"markd/internal/domain/entity"
)

// CreateBookmarkInput defines the data required to create a bookmark.
// The owner is never part of the input; it always comes from the
// authenticated identity.
type CreateBookmarkInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
	Link        string `json:"link" validate:"required,url"`
}

// EditBookmarkInput defines the partial fields accepted when updating a
// bookmark. Only non-nil fields are applied; the owner id is immutable.
type EditBookmarkInput struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty" validate:"omitempty,url"`
}

// BookmarkUsecase defines the interface for bookmark business operations.
// Every operation takes the authenticated user's id as its first argument and
// enforces ownership before reading or mutating anything.
type BookmarkUsecase interface {
	Create(ctx context.Context, userID int64, input *CreateBookmarkInput) (*entity.Bookmark, error)
	List(ctx context.Context, userID int64) ([]*entity.Bookmark, error)
	GetByID(ctx context.Context, userID, bookmarkID int64) (*entity.Bookmark, error)
	UpdateByID(ctx context.Context, userID, bookmarkID int64, input *EditBookmarkInput) (*entity.Bookmark, error)
	DeleteByID(ctx context.Context, userID, bookmarkID int64) error
}
