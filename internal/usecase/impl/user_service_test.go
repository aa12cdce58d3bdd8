package impl

import (
	"context"
	"testing"

	"passmanager/internal/domain/entity"
	domainerrors "passmanager/internal/domain/errors"
	"passmanager/internal/domain/repository"
	mockRepo "passmanager/internal/mocks/repository"
	mockSvc "passmanager/internal/mocks/service"
	"passmanager/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Username: testUsername, Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return(testHash, nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, testUsername, user.Username)
	assert.Equal(t, testHash, user.PasswordHash)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Username: testUsername, Password: "weak"}

	fx.hasher.EXPECT().ValidatePasswordStrength("weak").
		Return(domainerrors.ErrPasswordStrength.WithDetails("too short"))

	user, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_RegisterUser_Duplicate(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Username: testUsername, Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return(testHash, nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists"))

	user, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Username: testUsername, Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("", domainerrors.ErrPasswordHashFailed)

	_, err := fx.service.RegisterUser(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_GetAllUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	users := []*entity.User{{Username: "alice"}, {Username: "bob"}}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	got, err := fx.service.GetAllUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_GetUserByUsername(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(fx userServiceFixtures, ctx context.Context)
		wantUser bool
		wantErr  bool
	}{
		{
			name: "matching credentials",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByUsername(ctx, testUsername).Return(newStoredUser(), nil)
				fx.hasher.EXPECT().Check(testPassword, testHash).Return(true)
			},
			wantUser: true,
		},
		{
			name: "wrong password yields empty result",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByUsername(ctx, testUsername).Return(newStoredUser(), nil)
				fx.hasher.EXPECT().Check(testPassword, testHash).Return(false)
			},
		},
		{
			name: "unknown user yields empty result",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByUsername(ctx, testUsername).Return(nil, repository.ErrUserNotFound)
				expectDecoyCheck(fx.hasher, testPassword)
			},
		},
		{
			name: "store failure",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByUsername(ctx, testUsername).Return(nil, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			tt.setup(fx, ctx)

			user, err := fx.service.GetUserByUsername(ctx, testUsername, testPassword)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			if tt.wantUser {
				require.NotNil(t, user)
				assert.Equal(t, testUsername, user.Username)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, testUsername).Return(newStoredUser(), nil)
	fx.hasher.EXPECT().Check(testPassword, testHash).Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword1!").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword1!").Return("new_hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == testUsername && u.PasswordHash == "new_hash"
		})).
		Return(nil)

	user, err := fx.service.UpdateUser(ctx, testUsername, testPassword, &usecase.UpdateUserInput{NewPassword: "NewPassword1!"})

	require.NoError(t, err)
	assert.Equal(t, testUsername, user.Username)
	assert.Equal(t, "new_hash", user.PasswordHash)
}

func TestUserService_UpdateUser_InvalidCredentials(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, testUsername).Return(newStoredUser(), nil)
	fx.hasher.EXPECT().Check("wrong", testHash).Return(false)

	user, err := fx.service.UpdateUser(ctx, testUsername, "wrong", &usecase.UpdateUserInput{NewPassword: "NewPassword1!"})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, testUsername).Return(newStoredUser(), nil)
	fx.hasher.EXPECT().Check(testPassword, testHash).Return(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txEntryRepo := mockRepo.NewMockServicePasswordRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().ServicePasswordRepo().Return(txEntryRepo)
			txEntryRepo.EXPECT().DeleteByUsername(ctx, testUsername).Return(nil)
			txUserRepo.EXPECT().DeleteByUsername(ctx, testUsername).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, fx.service.DeleteUser(ctx, testUsername, testPassword))
}

func TestUserService_DeleteUser_InvalidCredentials(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, testUsername).Return(nil, repository.ErrUserNotFound)
	expectDecoyCheck(fx.hasher, testPassword)

	err := fx.service.DeleteUser(ctx, testUsername, testPassword)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_DeleteUser_EntryDeletionFails(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to delete service passwords of user")

	fx.userRepo.EXPECT().FindByUsername(ctx, testUsername).Return(newStoredUser(), nil)
	fx.hasher.EXPECT().Check(testPassword, testHash).Return(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txEntryRepo := mockRepo.NewMockServicePasswordRepository(t)

			mockFactory.EXPECT().ServicePasswordRepo().Return(txEntryRepo)
			txEntryRepo.EXPECT().DeleteByUsername(ctx, testUsername).Return(dbErr)

			return fn(mockFactory)
		})

	err := fx.service.DeleteUser(ctx, testUsername, testPassword)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
