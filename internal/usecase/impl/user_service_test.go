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

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := &stubTransactionManager{
		factory: &stubRepositoryFactory{userRepo: userRepo},
	}

	service := NewUserService(userRepo, txManager, newDiscardLogger())

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:        3,
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Doe",
	}

	fx.userRepo.On("FindByID", ctx, int64(3)).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_EditUser_PartialUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:         3,
		Email:      "alice@example.com",
		FirstName:  "Alice",
		LastName:   "Doe",
		MiddleName: "May",
	}

	newFirst := "Alicia"
	input := &usecase.EditUserInput{FirstName: &newFirst}

	fx.userRepo.On("FindByID", ctx, int64(3)).Return(user, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.User)
			assert.Equal(t, "Alicia", updated.FirstName)
			// Fields not present in the input stay untouched.
			assert.Equal(t, "Doe", updated.LastName)
			assert.Equal(t, "May", updated.MiddleName)
			assert.Equal(t, "alice@example.com", updated.Email)
		}).
		Return(nil)

	got, err := fx.service.EditUser(ctx, 3, input)

	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.FirstName)
}

func TestUserService_EditUser_RemovedDuringUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 3, Email: "alice@example.com", FirstName: "Alice", LastName: "Doe"}

	fx.userRepo.On("FindByID", ctx, int64(3)).Return(user, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUserNotFound)

	newFirst := "Alicia"
	got, err := fx.service.EditUser(ctx, 3, &usecase.EditUserInput{FirstName: &newFirst})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_EditUser_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	newFirst := "Alicia"
	got, err := fx.service.EditUser(ctx, 99, &usecase.EditUserInput{FirstName: &newFirst})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
