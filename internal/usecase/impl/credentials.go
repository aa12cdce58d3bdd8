package impl

import (
	"context"
	"sync"

	"passmanager/internal/domain/entity"
	domainerrors "passmanager/internal/domain/errors"
	"passmanager/internal/domain/repository"
	"passmanager/internal/domain/service"

	"github.com/pkg/errors"
)

// decoyPlaintext is hashed once per checker so unknown usernames pay
// the same bcrypt cost as wrong passwords.
const decoyPlaintext = "passmanager-unknown-user"

// credentialChecker verifies a username/password pair against the user store.
type credentialChecker struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher

	decoyOnce sync.Once
	decoyHash string
}

func newCredentialChecker(userRepo repository.UserRepository, hasher service.PasswordHasher) *credentialChecker {
	return &credentialChecker{userRepo: userRepo, hasher: hasher}
}

// authenticate returns the stored user when the password matches its hash.
// Unknown users and mismatched passwords both yield ErrInvalidCredentials.
func (c *credentialChecker) authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := c.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		c.hasher.Check(password, c.decoy())

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for credential check")
	}

	if !c.hasher.Check(password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return user, nil
}

func (c *credentialChecker) decoy() string {
	c.decoyOnce.Do(func() {
		if hash, err := c.hasher.Hash(decoyPlaintext); err == nil {
			c.decoyHash = hash
		}
	})

	return c.decoyHash
}
