package repository

import (
	"errors"

	"github.com/cnic-auth/backend/internal/domain/entity"
)

var (
	// ErrDuplicateUser is returned by Create when the email or CNIC is already taken.
	ErrDuplicateUser = errors.New("email or cnic already exists")
	// ErrNotFound is returned by lookups when no user matches.
	ErrNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related database operations.
// Uniqueness of email and cnic is enforced atomically at insert time by the
// backing store; callers must treat any pre-insert checks as advisory.
type UserRepository interface {
	Create(u *entity.User) error
	GetByCNIC(cnic string) (*entity.User, error)
	GetByID(userID string) (*entity.User, error)
}
