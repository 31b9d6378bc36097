// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"markd/internal/domain/entity"
)

// ErrBookmarkNotFound is returned when a bookmark does not exist. The use case
// layer decides how (or whether) to distinguish this from an ownership failure.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository defines the standard operations for bookmark persistence.
type BookmarkRepository interface {
	// Create persists a new bookmark entity to the storage.
	Create(ctx context.Context, bookmark *entity.Bookmark) error

	// ListByOwner retrieves all bookmarks owned by the given user, in
	// store-default order.
	ListByOwner(ctx context.Context, userID int64) ([]*entity.Bookmark, error)

	// FindByID retrieves a single bookmark regardless of owner. Ownership is
	// checked by the caller.
	FindByID(ctx context.Context, id int64) (*entity.Bookmark, error)

	// Update modifies an existing bookmark entity in the storage.
	Update(ctx context.Context, bookmark *entity.Bookmark) error

	// Delete removes exactly one bookmark by ID.
	Delete(ctx context.Context, id int64) error
}
