// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "passmanager/internal/delivery/context"
	"passmanager/internal/domain/entity"
	domainerrors "passmanager/internal/domain/errors"
	"passmanager/internal/domain/repository"
	"passmanager/internal/domain/service"
	"passmanager/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	hasher      service.PasswordHasher
	credentials *credentialChecker
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		hasher:      params.Hasher,
		credentials: newCredentialChecker(params.UserRepo, params.Hasher),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser validates and hashes the password, then stores the new account.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// GetAllUsers lists every registered account.
func (srv *userService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUserByUsername returns the user only when the password matches.
func (srv *userService) GetUserByUsername(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := srv.credentials.authenticate(ctx, username, password)
	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		srv.log(ctx).Debug("User lookup did not match", slog.String("username", username))

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// UpdateUser replaces the account password after checking the old one.
func (srv *userService) UpdateUser(ctx context.Context, username, oldPassword string, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.credentials.authenticate(ctx, username, oldPassword)
	if err != nil {
		srv.log(ctx).Warn("User update rejected", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, errors.Wrap(err, "new password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = hashedPassword
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist user update")
	}

	srv.log(ctx).Info("User password updated", slog.String("username", username))

	return user, nil
}

// DeleteUser removes the account and all of its stored entries atomically.
func (srv *userService) DeleteUser(ctx context.Context, username, password string) error {
	if _, err := srv.credentials.authenticate(ctx, username, password); err != nil {
		srv.log(ctx).Warn("User deletion rejected", slog.String("username", username), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ServicePasswordRepo().DeleteByUsername(ctx, username); err != nil {
			return errors.Wrap(err, "failed to delete service passwords")
		}

		if err := repoFactory.UserRepo().DeleteByUsername(ctx, username); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user disappeared during deletion")
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user deletion transaction", slog.String("username", username), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Info("User deleted", slog.String("username", username))

	return nil
}
