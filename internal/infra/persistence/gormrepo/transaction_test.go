package gormrepo

import (
	"context"
	"testing"

	"passmanager/internal/domain/entity"
	"passmanager/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Commit(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.UserRepo().Create(ctx, &entity.User{Username: "alice", PasswordHash: "h"}); err != nil {
			return err
		}

		return factory.ServicePasswordRepo().Create(ctx, &entity.ServicePassword{
			Username: "alice", ServiceName: "github", Password: "pw",
		})
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).FindByUsername(ctx, "alice")
	require.NoError(t, err)
	entries, err := NewServicePasswordRepository(db).FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.UserRepo().Create(ctx, &entity.User{Username: "alice", PasswordHash: "h"}); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = NewUserRepository(db).FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.UserRepo().Create(ctx, &entity.User{Username: "alice", PasswordHash: "h"})
			panic("unexpected")
		})
	})

	_, err := NewUserRepository(db).FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
