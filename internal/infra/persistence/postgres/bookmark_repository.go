// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"markd/internal/domain/entity"
	domainerrors "markd/internal/domain/errors"
	"markd/internal/domain/repository"
	"markd/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookmarkRepository implements the repository.BookmarkRepository interface using GORM.
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Create persists a new bookmark entity to the database.
func (repo *bookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Create(bookmarkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookmarkCreationFailed.WrapMessage("owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bookmark")
	}

	bookmark.ID = bookmarkM.ID
	bookmark.CreatedAt = bookmarkM.CreatedAt
	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// ListByOwner retrieves all bookmarks owned by the given user in store-default order.
func (repo *bookmarkRepository) ListByOwner(ctx context.Context, userID int64) ([]*entity.Bookmark, error) {
	var bookmarkMs []model.BookmarkModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bookmarkMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks by owner")
	}

	bookmarks := make([]*entity.Bookmark, 0, len(bookmarkMs))
	for i := range bookmarkMs {
		bookmarks = append(bookmarks, toBookmarkDomain(&bookmarkMs[i]))
	}

	return bookmarks, nil
}

// FindByID retrieves a single bookmark regardless of owner.
func (repo *bookmarkRepository) FindByID(ctx context.Context, id int64) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel
	if err := repo.db.WithContext(ctx).First(&bookmarkM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find bookmark by id")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// Update modifies the mutable columns of an existing bookmark. Only title,
// description, link and updated_at enter the SET clause; id, user_id and
// created_at are immutable through this path. A row that no longer exists is
// reported as ErrBookmarkNotFound, never re-inserted.
func (repo *bookmarkRepository) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	result := repo.db.WithContext(ctx).
		Model(bookmarkM).
		Select("title", "description", "link", "updated_at").
		Updates(bookmarkM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update bookmark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// Delete removes exactly one bookmark by ID. Deleting an ID that no longer
// exists reports ErrBookmarkNotFound so repeated deletes never look successful.
func (repo *bookmarkRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookmarkModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete bookmark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookmarkDomain converts a GORM BookmarkModel to a domain Bookmark entity.
func toBookmarkDomain(data *model.BookmarkModel) *entity.Bookmark {
	if data == nil {
		return nil
	}

	description := ""
	if data.Description != nil {
		description = *data.Description
	}

	return &entity.Bookmark{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: description,
		Link:        data.Link,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBookmarkDomain converts a domain Bookmark entity to a GORM BookmarkModel for persistence.
func fromBookmarkDomain(data *entity.Bookmark) *model.BookmarkModel {
	if data == nil {
		return nil
	}

	var description *string
	if data.Description != "" {
		description = &data.Description
	}

	return &model.BookmarkModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: description,
		Link:        data.Link,
	}
}
