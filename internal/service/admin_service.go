package service

import (
	"context"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
	"github.com/structura/backend/pkg/auth"
)

// AdminPatch carries the fields of a partial account update. Nil means
// "leave unchanged". Passwords change through a dedicated field so the
// hash is only recomputed when one is supplied.
type AdminPatch struct {
	Username *string
	Email    *string
	Role     *string
	IsActive *bool
	Password *string
}

// AdminService provides super-admin-only administrator account management.
type AdminService interface {
	List(ctx context.Context, opts model.AdminListOptions) ([]*model.Admin, int64, error)
	Get(ctx context.Context, id string) (*model.Admin, error)
	Create(ctx context.Context, admin *model.Admin, password string) error
	Update(ctx context.Context, id string, patch AdminPatch) (*model.Admin, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*model.Admin, error)
}

type adminServiceImpl struct {
	repo       repository.AdminRepository
	bcryptCost int
}

// NewAdminService creates an AdminService hashing passwords at the given
// cost.
func NewAdminService(repo repository.AdminRepository, bcryptCost int) AdminService {
	return &adminServiceImpl{repo: repo, bcryptCost: bcryptCost}
}

func (s *adminServiceImpl) List(ctx context.Context, opts model.AdminListOptions) ([]*model.Admin, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *adminServiceImpl) Get(ctx context.Context, id string) (*model.Admin, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *adminServiceImpl) Create(ctx context.Context, admin *model.Admin, password string) error {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	admin.Password = hash
	if admin.Role == "" {
		admin.Role = model.RoleAdmin
	}
	admin.IsActive = true

	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}
	admin.Password = ""
	return nil
}

func (s *adminServiceImpl) Update(ctx context.Context, id string, patch AdminPatch) (*model.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		admin.Username = *patch.Username
	}
	if patch.Email != nil {
		admin.Email = *patch.Email
	}
	if patch.Role != nil {
		admin.Role = *patch.Role
	}
	if patch.IsActive != nil {
		admin.IsActive = *patch.IsActive
	}

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}

	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
			return nil, err
		}
	}
	return admin, nil
}

func (s *adminServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *adminServiceImpl) ToggleActive(ctx context.Context, id string) (*model.Admin, error) {
	return s.repo.ToggleActive(ctx, id)
}
