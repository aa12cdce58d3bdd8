package gormrepo

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"translated", gorm.ErrDuplicatedKey, true},
		{"wrapped translated", errors.Wrap(gorm.ErrDuplicatedKey, "create"), true},
		{"postgres", errors.New(`ERROR: duplicate key value violates unique constraint "users_username_key" (SQLSTATE 23505)`), true},
		{"sqlite", errors.New("UNIQUE constraint failed: users.username"), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New("NOT NULL constraint failed: users.password_hash")))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "username" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("syntax error")))
}
