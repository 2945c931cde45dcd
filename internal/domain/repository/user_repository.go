package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a create collides with the unique
	// email index (comparison is case-insensitive at the storage layer).
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user persistence.
// All reads return users with an empty PasswordHash; CredentialByEmail is
// the single accessor that exposes the stored hash, so login verification
// has to ask for it explicitly.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	CredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
