package gormrepo

import (
	"context"
	"testing"

	"passmanager/internal/domain/entity"
	domainerrors "passmanager/internal/domain/errors"
	"passmanager/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEntry(t *testing.T, repo repository.ServicePasswordRepository, username, service, password string) *entity.ServicePassword {
	t.Helper()

	entry := &entity.ServicePassword{Username: username, ServiceName: service, Password: password}
	require.NoError(t, repo.Create(context.Background(), entry))

	return entry
}

func TestServicePasswordRepository_CreateAndFindByUsername(t *testing.T) {
	repo := NewServicePasswordRepository(newTestDB(t))

	seedEntry(t, repo, "testuser", "zeta", "pw-z")
	created := seedEntry(t, repo, "testuser", "testservice", "testpassword")
	seedEntry(t, repo, "other", "testservice", "pw-o")
	assert.NotEqual(t, uuid.Nil, created.ID)

	entries, err := repo.FindByUsername(context.Background(), "testuser")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "testservice", entries[0].ServiceName)
	assert.Equal(t, "testpassword", entries[0].Password)
	assert.Equal(t, "testuser", entries[0].Username)
	assert.Equal(t, "zeta", entries[1].ServiceName)
}

func TestServicePasswordRepository_FindByUsername_Empty(t *testing.T) {
	repo := NewServicePasswordRepository(newTestDB(t))

	entries, err := repo.FindByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestServicePasswordRepository_Create_Duplicate(t *testing.T) {
	repo := NewServicePasswordRepository(newTestDB(t))
	seedEntry(t, repo, "testuser", "github", "one")

	err := repo.Create(context.Background(), &entity.ServicePassword{Username: "testuser", ServiceName: "github", Password: "two"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServicePasswordAlreadyExists))
}

func TestServicePasswordRepository_FindByIDAndUsername(t *testing.T) {
	repo := NewServicePasswordRepository(newTestDB(t))
	ctx := context.Background()
	entry := seedEntry(t, repo, "testuser", "github", "pw")

	found, err := repo.FindByIDAndUsername(ctx, entry.ID, "testuser")
	require.NoError(t, err)
	assert.Equal(t, "github", found.ServiceName)

	_, err = repo.FindByIDAndUsername(ctx, entry.ID, "intruder")
	assert.ErrorIs(t, err, repository.ErrServicePasswordNotFound)

	_, err = repo.FindByIDAndUsername(ctx, uuid.New(), "testuser")
	assert.ErrorIs(t, err, repository.ErrServicePasswordNotFound)
}

func TestServicePasswordRepository_FindByUsernameAndServiceName(t *testing.T) {
	repo := NewServicePasswordRepository(newTestDB(t))
	ctx := context.Background()
	seedEntry(t, repo, "testuser", "github", "pw")

	found, err := repo.FindByUsernameAndServiceName(ctx, "testuser", "github")
	require.NoError(t, err)
	assert.Equal(t, "pw", found.Password)

	_, err = repo.FindByUsernameAndServiceName(ctx, "testuser", "gitlab")
	assert.ErrorIs(t, err, repository.ErrServicePasswordNotFound)
}

func TestServicePasswordRepository_Update(t *testing.T) {
	repo := NewServicePasswordRepository(newTestDB(t))
	ctx := context.Background()
	entry := seedEntry(t, repo, "testuser", "github", "old")

	entry.ServiceName = "gitlab"
	entry.Password = "new"
	require.NoError(t, repo.Update(ctx, entry))

	found, err := repo.FindByIDAndUsername(ctx, entry.ID, "testuser")
	require.NoError(t, err)
	assert.Equal(t, "gitlab", found.ServiceName)
	assert.Equal(t, "new", found.Password)
}

func TestServicePasswordRepository_Update_NotFound(t *testing.T) {
	repo := NewServicePasswordRepository(newTestDB(t))

	err := repo.Update(context.Background(), &entity.ServicePassword{
		ID: uuid.New(), Username: "testuser", ServiceName: "github", Password: "pw",
	})
	assert.ErrorIs(t, err, repository.ErrServicePasswordNotFound)
}

func TestServicePasswordRepository_Update_RenameToExisting(t *testing.T) {
	repo := NewServicePasswordRepository(newTestDB(t))
	seedEntry(t, repo, "testuser", "github", "a")
	entry := seedEntry(t, repo, "testuser", "gitlab", "b")

	entry.ServiceName = "github"
	err := repo.Update(context.Background(), entry)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServicePasswordAlreadyExists))
}

func TestServicePasswordRepository_DeleteByUsernameAndServiceName(t *testing.T) {
	repo := NewServicePasswordRepository(newTestDB(t))
	ctx := context.Background()
	seedEntry(t, repo, "testuser", "github", "pw")
	seedEntry(t, repo, "testuser", "gitlab", "pw")

	require.NoError(t, repo.DeleteByUsernameAndServiceName(ctx, "testuser", "github"))

	entries, err := repo.FindByUsername(ctx, "testuser")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gitlab", entries[0].ServiceName)

	err = repo.DeleteByUsernameAndServiceName(ctx, "testuser", "github")
	assert.ErrorIs(t, err, repository.ErrServicePasswordNotFound)
}

func TestServicePasswordRepository_DeleteByUsername(t *testing.T) {
	repo := NewServicePasswordRepository(newTestDB(t))
	ctx := context.Background()
	seedEntry(t, repo, "testuser", "github", "pw")
	seedEntry(t, repo, "testuser", "gitlab", "pw")
	seedEntry(t, repo, "other", "github", "pw")

	require.NoError(t, repo.DeleteByUsername(ctx, "testuser"))
	require.NoError(t, repo.DeleteByUsername(ctx, "testuser"))

	entries, err := repo.FindByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Empty(t, entries)

	others, err := repo.FindByUsername(ctx, "other")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}
