package impl

import (
	"context"
	"testing"

	"markd/internal/domain/entity"
	domainerrors "markd/internal/domain/errors"
	"markd/internal/domain/repository"
	mockRepo "markd/internal/mocks/repository"
	"markd/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookmarkServiceFixtures struct {
	service      usecase.BookmarkUsecase
	bookmarkRepo *mockRepo.MockBookmarkRepository
}

func createTestBookmarkService(t *testing.T) bookmarkServiceFixtures {
	bookmarkRepo := mockRepo.NewMockBookmarkRepository(t)
	txManager := &stubTransactionManager{
		factory: &stubRepositoryFactory{bookmarkRepo: bookmarkRepo},
	}

	service := NewBookmarkService(bookmarkRepo, txManager, newDiscardLogger())

	return bookmarkServiceFixtures{
		service:      service,
		bookmarkRepo: bookmarkRepo,
	}
}

func TestBookmarkService_Create_Success(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	input := &usecase.CreateBookmarkInput{
		Title:       "Go blog",
		Description: "official blog",
		Link:        "https://go.dev/blog",
	}

	fx.bookmarkRepo.On("Create", ctx, mock.AnythingOfType("*entity.Bookmark")).
		Run(func(args mock.Arguments) {
			bookmark := args.Get(1).(*entity.Bookmark)
			assert.Equal(t, int64(5), bookmark.UserID)
			assert.Equal(t, input.Title, bookmark.Title)
			bookmark.ID = 10
		}).
		Return(nil)

	bookmark, err := fx.service.Create(ctx, 5, input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), bookmark.ID)
	assert.Equal(t, int64(5), bookmark.UserID)
}

func TestBookmarkService_List_EmptyForFreshUser(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	fx.bookmarkRepo.On("ListByOwner", ctx, int64(5)).Return([]*entity.Bookmark{}, nil)

	bookmarks, err := fx.service.List(ctx, 5)

	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

func TestBookmarkService_GetByID_Success(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	stored := &entity.Bookmark{ID: 10, UserID: 5, Title: "Go blog", Link: "https://go.dev/blog"}

	fx.bookmarkRepo.On("FindByID", ctx, int64(10)).Return(stored, nil)

	bookmark, err := fx.service.GetByID(ctx, 5, 10)

	require.NoError(t, err)
	assert.Equal(t, stored, bookmark)
}

// A missing bookmark and someone else's bookmark must produce the same error.
func TestBookmarkService_GetByID_MissingAndForeignLookAlike(t *testing.T) {
	fx := createTestBookmarkService(t)
	ctx := context.Background()

	fx.bookmarkRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrBookmarkNotFound)

	_, missingErr := fx.service.GetByID(ctx, 5, 404)

	foreign := &entity.Bookmark{ID: 11, UserID: 6, Title: "private", Link: "https://example.com"}
	fx.bookmarkRepo.On("FindByID", ctx, int64(11)).Return(foreign, nil)

	_, foreignErr := fx.service.GetByID(ctx, 5, 11)

	require.Error(t, missingErr)
	require.Error(t, foreignErr)
	assert.ErrorIs(t, missingErr, domainerrors.ErrBookmarkAccessDenied)
	assert.ErrorIs(t, foreignErr, domainerrors.ErrBookmarkAccessDenied)
}

func TestBookmarkService_UpdateByID_PartialUpdate(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	stored := &entity.Bookmark{
		ID:          10,
		UserID:      5,
		Title:       "Go blog",
		Description: "official blog",
		Link:        "https://go.dev/blog",
	}

	newTitle := "The Go Blog"
	input := &usecase.EditBookmarkInput{Title: &newTitle}

	fx.bookmarkRepo.On("FindByID", ctx, int64(10)).Return(stored, nil)
	fx.bookmarkRepo.On("Update", ctx, mock.AnythingOfType("*entity.Bookmark")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.Bookmark)
			assert.Equal(t, "The Go Blog", updated.Title)
			assert.Equal(t, "official blog", updated.Description)
			assert.Equal(t, "https://go.dev/blog", updated.Link)
			assert.Equal(t, int64(5), updated.UserID)
		}).
		Return(nil)

	bookmark, err := fx.service.UpdateByID(ctx, 5, 10, input)

	require.NoError(t, err)
	assert.Equal(t, "The Go Blog", bookmark.Title)
}

func TestBookmarkService_UpdateByID_ForeignOwnerDenied(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	foreign := &entity.Bookmark{ID: 11, UserID: 6, Title: "private", Link: "https://example.com"}

	fx.bookmarkRepo.On("FindByID", ctx, int64(11)).Return(foreign, nil)

	newTitle := "hijacked"
	bookmark, err := fx.service.UpdateByID(ctx, 5, 11, &usecase.EditBookmarkInput{Title: &newTitle})

	require.Error(t, err)
	assert.Nil(t, bookmark)
	assert.ErrorIs(t, err, domainerrors.ErrBookmarkAccessDenied)
	fx.bookmarkRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// A bookmark deleted between the ownership check and the write must fail the
// update, not resurrect the row.
func TestBookmarkService_UpdateByID_VanishedBeforeWrite(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	stored := &entity.Bookmark{ID: 10, UserID: 5, Title: "Go blog", Link: "https://go.dev/blog"}

	fx.bookmarkRepo.On("FindByID", ctx, int64(10)).Return(stored, nil)
	fx.bookmarkRepo.On("Update", ctx, mock.AnythingOfType("*entity.Bookmark")).
		Return(repository.ErrBookmarkNotFound)

	newTitle := "The Go Blog"
	bookmark, err := fx.service.UpdateByID(ctx, 5, 10, &usecase.EditBookmarkInput{Title: &newTitle})

	require.Error(t, err)
	assert.Nil(t, bookmark)
	assert.ErrorIs(t, err, domainerrors.ErrBookmarkAccessDenied)
}

func TestBookmarkService_DeleteByID_Success(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	stored := &entity.Bookmark{ID: 10, UserID: 5, Title: "Go blog", Link: "https://go.dev/blog"}

	fx.bookmarkRepo.On("FindByID", ctx, int64(10)).Return(stored, nil)
	fx.bookmarkRepo.On("Delete", ctx, int64(10)).Return(nil)

	err := fx.service.DeleteByID(ctx, 5, 10)

	require.NoError(t, err)
}

func TestBookmarkService_DeleteByID_AlreadyGone(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	fx.bookmarkRepo.On("FindByID", ctx, int64(10)).Return(nil, repository.ErrBookmarkNotFound)

	err := fx.service.DeleteByID(ctx, 5, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBookmarkAccessDenied)
	fx.bookmarkRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
