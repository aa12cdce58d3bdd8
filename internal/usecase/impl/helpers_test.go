package impl

import (
	"io"
	"log/slog"

	"passmanager/internal/domain/entity"
	mockSvc "passmanager/internal/mocks/service"

	"github.com/google/uuid"
)

const (
	testUsername = "testuser"
	testPassword = "password"
	testHash     = "hashed_password"
	testDecoy    = "hashed_decoy"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStoredUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     testUsername,
		PasswordHash: testHash,
	}
}

// expectDecoyCheck covers the unknown-user branch of the credential check.
func expectDecoyCheck(hasher *mockSvc.MockPasswordHasher, password string) {
	hasher.EXPECT().Hash(decoyPlaintext).Return(testDecoy, nil).Once()
	hasher.EXPECT().Check(password, testDecoy).Return(false)
}
