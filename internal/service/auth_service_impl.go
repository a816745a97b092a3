package service

import (
	"context"
	"errors"
	"time"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
	"github.com/structura/backend/pkg/auth"
)

type authServiceImpl struct {
	repo       repository.AdminRepository
	secret     []byte
	expiry     time.Duration
	bcryptCost int
}

// NewAuthService creates an AuthService signing tokens with the given
// secret.
func NewAuthService(repo repository.AdminRepository, secret []byte, expiry time.Duration, bcryptCost int) AuthService {
	return &authServiceImpl{repo: repo, secret: secret, expiry: expiry, bcryptCost: bcryptCost}
}

func (s *authServiceImpl) Login(ctx context.Context, login, password string) (string, *model.Admin, error) {
	admin, err := s.repo.FindByLogin(ctx, login)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if !admin.IsActive || !auth.CheckPassword(admin.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.NewToken(s.secret, admin.ID.Hex(), admin.Role, s.expiry)
	if err != nil {
		return "", nil, err
	}

	admin.Password = ""
	return token, admin, nil
}

func (s *authServiceImpl) Me(ctx context.Context, adminID string) (*model.Admin, error) {
	return s.repo.FindByID(ctx, adminID)
}

func (s *authServiceImpl) ChangePassword(ctx context.Context, adminID, current, updated string) error {
	admin, err := s.repo.FindWithPassword(ctx, adminID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(admin.Password, current) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(updated, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, adminID, hash)
}

func (s *authServiceImpl) LoadIdentity(ctx context.Context, adminID string) (*auth.Identity, error) {
	admin, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !admin.IsActive {
		return nil, errors.New("account deactivated")
	}
	return &auth.Identity{
		ID:       admin.ID.Hex(),
		Username: admin.Username,
		Role:     admin.Role,
	}, nil
}
