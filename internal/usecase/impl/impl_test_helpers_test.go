package impl

import (
	"context"
	"io"
	"log/slog"

	"markd/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRepositoryFactory hands the test's repositories back to transactional code.
type stubRepositoryFactory struct {
	userRepo     repository.UserRepository
	bookmarkRepo repository.BookmarkRepository
}

func (f *stubRepositoryFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *stubRepositoryFactory) BookmarkRepo() repository.BookmarkRepository {
	return f.bookmarkRepo
}

// stubTransactionManager runs the unit of work directly, with no real
// transaction underneath. Error propagation still matches the real manager.
type stubTransactionManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}
