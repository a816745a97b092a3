package service

import (
	"context"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/pkg/auth"
)

// AuthService defines credential login and token-based identity resolution.
type AuthService interface {
	// Login verifies the credentials and returns a signed bearer token
	// together with the sanitized administrator record.
	Login(ctx context.Context, login, password string) (string, *model.Admin, error)

	// Me returns the administrator for an authenticated identity.
	Me(ctx context.Context, adminID string) (*model.Admin, error)

	// ChangePassword verifies the current password and stores a new hash.
	ChangePassword(ctx context.Context, adminID, current, updated string) error

	// LoadIdentity satisfies auth.IdentityLoader: it resolves a verified
	// token subject to an active administrator, erroring for unknown or
	// deactivated accounts.
	LoadIdentity(ctx context.Context, adminID string) (*auth.Identity, error)
}
