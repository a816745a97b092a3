package repository

import (
	"context"

	"github.com/structura/backend/internal/model"
)

// AdminRepository defines the persistence interface for administrator
// accounts.
type AdminRepository interface {
	// FindByID returns the administrator without the password hash.
	FindByID(ctx context.Context, id string) (*model.Admin, error)
	// FindByLogin matches username or email and includes the password hash
	// for credential verification.
	FindByLogin(ctx context.Context, login string) (*model.Admin, error)
	// FindWithPassword returns the administrator including the password
	// hash, for password-change verification.
	FindWithPassword(ctx context.Context, id string) (*model.Admin, error)
	List(ctx context.Context, opts model.AdminListOptions) ([]*model.Admin, int64, error)
	Create(ctx context.Context, admin *model.Admin) error
	Update(ctx context.Context, admin *model.Admin) error
	UpdatePassword(ctx context.Context, id, hash string) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*model.Admin, error)
	Count(ctx context.Context) (int64, error)
}
