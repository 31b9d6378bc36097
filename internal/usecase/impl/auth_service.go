// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "markd/internal/delivery/context"
	"markd/internal/domain/entity"
	domainerrors "markd/internal/domain/errors"
	"markd/internal/domain/repository"
	"markd/internal/domain/service"
	"markd/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account and returns an access token for it.
// A duplicate email loses on the store's unique constraint; the resulting
// conflict error never names the colliding field.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		MiddleName:   input.MiddleName,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user during signup", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	accessToken, err := srv.tokenService.Generate(newUser.ID, newUser.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Int64("userID", newUser.ID))

	return &usecase.TokenOutput{AccessToken: accessToken}, nil
}

// Login authenticates an existing account and returns a fresh access token.
// An unknown email and a wrong password both return the exact same error, so
// the endpoint cannot be used to enumerate registered addresses.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.Int64("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after login")
	}

	srv.log(ctx).Debug("Login completed", slog.Int64("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: accessToken}, nil
}
