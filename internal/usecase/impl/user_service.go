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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the profile of the authenticated user.
func (srv *userService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Int64("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// EditUser applies the provided profile fields and returns the updated
// profile. The read-modify-write runs in one transaction so concurrent edits
// cannot interleave.
func (srv *userService) EditUser(ctx context.Context, userID int64, input *usecase.EditUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", slog.Int64("userID", userID))

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.MiddleName != nil {
			user.MiddleName = *input.MiddleName
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user removed during update")
			}

			return errors.Wrap(err, "failed to update user profile")
		}

		updated = user

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to edit user")
	}

	return updated, nil
}
