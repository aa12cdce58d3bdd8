package auth

import (
	"strings"
	"testing"

	"passmanager/config"
	domainerrors "passmanager/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, config.PasswordStrengthConfig{})

	hash, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password", hash)

	assert.True(t, hasher.Check("password", hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, config.PasswordStrengthConfig{})

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("StrongPass123!", "invalid_hash"))
}

func TestBcryptHasher_HashTooLong(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, config.PasswordStrengthConfig{})

	_, err := hasher.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: customCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(99, config.PasswordStrengthConfig{})

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
		ForbiddenWords:   []string{"password", "admin"},
	})

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Pässphräse123!",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"", "must not be empty"},
		{"Ab1!", "too short"},
		{strings.Repeat("Ab1!", 17), "too long"},
		{"PASSWORD123!", "lowercase"},
		{"strongpass123!", "uppercase"},
		{"StrongPassABC!", "number"},
		{"StrongPass123", "special character"},
		{"MyPassword123!", "forbidden word"},
		{"SuperAdmin123!", "forbidden word"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		require.Error(t, err, "Expected error for password: %s", tc.password)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Details(), tc.expectedErr)
	}
}

func TestBcryptHasher_ValidatePasswordStrength_NoPolicy(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, config.PasswordStrengthConfig{})

	assert.NoError(t, hasher.ValidatePasswordStrength("x"))
	assert.Error(t, hasher.ValidatePasswordStrength(""))
	assert.Error(t, hasher.ValidatePasswordStrength(strings.Repeat("x", 73)))
}

func TestPasswordStrengthHelpers(t *testing.T) {
	assert.True(t, hasUppercase("Password"))
	assert.False(t, hasUppercase("password"))

	assert.True(t, hasLowercase("Password"))
	assert.False(t, hasLowercase("PASSWORD"))

	assert.True(t, hasNumbers("Password123"))
	assert.False(t, hasNumbers("Password"))

	assert.True(t, hasSpecialChars("Password!"))
	assert.False(t, hasSpecialChars("Password"))

	forbiddenWords := []string{"password", "admin"}
	assert.True(t, containsForbiddenWords("MyPassword123", forbiddenWords))
	assert.True(t, containsForbiddenWords("AdminUser", forbiddenWords))
	assert.False(t, containsForbiddenWords("SecurePass123", forbiddenWords))
}
