// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "markd/internal/delivery/context"
	"markd/internal/domain/entity"
	domainerrors "markd/internal/domain/errors"
	"markd/internal/domain/repository"
	"markd/internal/usecase"

	"github.com/pkg/errors"
)

// bookmarkService implements the BookmarkUsecase interface.
//
// Missing bookmarks and bookmarks owned by someone else are distinguished
// internally (and in logs) but surface through the same ErrBookmarkAccessDenied,
// so a caller cannot probe which ids exist.
type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	txManager    repository.TransactionManager
	logger       *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(
	bookmarkRepo repository.BookmarkRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.BookmarkUsecase {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new bookmark owned by the authenticated user.
func (srv *bookmarkService) Create(ctx context.Context, userID int64, input *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	srv.log(ctx).Info("Creating bookmark", slog.Int64("userID", userID))

	bookmark := &entity.Bookmark{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
	}

	if err := srv.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, errors.Wrap(err, "failed to create bookmark")
	}

	return bookmark, nil
}

// List returns all bookmarks owned by the authenticated user, in
// store-default order. A fresh user gets an empty slice, not nil-or-error.
func (srv *bookmarkService) List(ctx context.Context, userID int64) ([]*entity.Bookmark, error) {
	srv.log(ctx).Debug("Listing bookmarks", slog.Int64("userID", userID))

	bookmarks, err := srv.bookmarkRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return bookmarks, nil
}

// GetByID returns a single bookmark after the ownership check.
func (srv *bookmarkService) GetByID(ctx context.Context, userID, bookmarkID int64) (*entity.Bookmark, error) {
	bookmark, err := srv.findOwned(ctx, srv.bookmarkRepo, userID, bookmarkID)
	if err != nil {
		return nil, err
	}

	return bookmark, nil
}

// UpdateByID applies the provided fields to an owned bookmark. The ownership
// check and the write run in the same transaction so a concurrent delete
// cannot slip between them. The owner id is never updatable.
func (srv *bookmarkService) UpdateByID(ctx context.Context, userID, bookmarkID int64, input *usecase.EditBookmarkInput) (*entity.Bookmark, error) {
	srv.log(ctx).Info("Updating bookmark", slog.Int64("userID", userID), slog.Int64("bookmarkID", bookmarkID))

	var updated *entity.Bookmark

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookmarkRepo := repoFactory.BookmarkRepo()

		bookmark, err := srv.findOwned(ctx, bookmarkRepo, userID, bookmarkID)
		if err != nil {
			return err
		}

		if input.Title != nil {
			bookmark.Title = *input.Title
		}
		if input.Description != nil {
			bookmark.Description = *input.Description
		}
		if input.Link != nil {
			bookmark.Link = *input.Link
		}

		if err := bookmarkRepo.Update(ctx, bookmark); err != nil {
			if errors.Is(err, repository.ErrBookmarkNotFound) {
				return errors.Wrap(domainerrors.ErrBookmarkAccessDenied, "bookmark vanished before update")
			}

			return errors.Wrap(err, "failed to update bookmark")
		}

		updated = bookmark

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteByID removes an owned bookmark. Deleting an id that is already gone
// fails the ownership check rather than succeeding silently.
func (srv *bookmarkService) DeleteByID(ctx context.Context, userID, bookmarkID int64) error {
	srv.log(ctx).Info("Deleting bookmark", slog.Int64("userID", userID), slog.Int64("bookmarkID", bookmarkID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookmarkRepo := repoFactory.BookmarkRepo()

		if _, err := srv.findOwned(ctx, bookmarkRepo, userID, bookmarkID); err != nil {
			return err
		}

		if err := bookmarkRepo.Delete(ctx, bookmarkID); err != nil {
			if errors.Is(err, repository.ErrBookmarkNotFound) {
				return errors.Wrap(domainerrors.ErrBookmarkAccessDenied, "bookmark vanished before delete")
			}

			return errors.Wrap(err, "failed to delete bookmark")
		}

		return nil
	})
}

// findOwned loads a bookmark and enforces that it belongs to userID.
func (srv *bookmarkService) findOwned(ctx context.Context, bookmarkRepo repository.BookmarkRepository, userID, bookmarkID int64) (*entity.Bookmark, error) {
	bookmark, err := bookmarkRepo.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			srv.log(ctx).Debug("Bookmark not found", slog.Int64("bookmarkID", bookmarkID))

			return nil, errors.Wrap(domainerrors.ErrBookmarkAccessDenied, "bookmark does not exist")
		}

		return nil, errors.Wrap(err, "failed to find bookmark")
	}

	if bookmark.UserID != userID {
		srv.log(ctx).Warn("Bookmark ownership violation",
			slog.Int64("userID", userID),
			slog.Int64("bookmarkID", bookmarkID),
		)

		return nil, errors.Wrap(domainerrors.ErrBookmarkAccessDenied, "bookmark owned by another user")
	}

	return bookmark, nil
}
