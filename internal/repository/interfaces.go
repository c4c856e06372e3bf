package repository

import (
	"context"

	"github.com/rbarbosa/accounts-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateFields writes only the given columns, leaving the rest of
	// the row untouched.
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type Repositories struct {
	User UserRepository
}
