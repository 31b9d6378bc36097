package repository

import (
	"context"

	"markd/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockBookmarkRepository is a testify mock for repository.BookmarkRepository.
type MockBookmarkRepository struct {
	mock.Mock
}

// NewMockBookmarkRepository creates the mock and registers expectation cleanup.
func NewMockBookmarkRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookmarkRepository {
	m := &MockBookmarkRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	args := m.Called(ctx, bookmark)

	return args.Error(0)
}

func (m *MockBookmarkRepository) ListByOwner(ctx context.Context, userID int64) ([]*entity.Bookmark, error) {
	args := m.Called(ctx, userID)

	bookmarks, _ := args.Get(0).([]*entity.Bookmark)

	return bookmarks, args.Error(1)
}

func (m *MockBookmarkRepository) FindByID(ctx context.Context, id int64) (*entity.Bookmark, error) {
	args := m.Called(ctx, id)

	bookmark, _ := args.Get(0).(*entity.Bookmark)

	return bookmark, args.Error(1)
}

func (m *MockBookmarkRepository) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	args := m.Called(ctx, bookmark)

	return args.Error(0)
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
