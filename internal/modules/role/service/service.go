package role

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/role/dto"
	"anoa.com/sekolahadmin/internal/modules/role/repository"
	"anoa.com/sekolahadmin/pkg/apperror"
	"anoa.com/sekolahadmin/pkg/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleService interface {
	GetAllRoles(ctx context.Context) ([]dto.RoleResponse, error)
	CreateRole(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleResponse, error)
	UpdateRole(ctx context.Context, id uuid.UUID, patch dto.RolePatch) (*dto.RoleResponse, error)
	DeleteRole(ctx context.Context, id uuid.UUID) error
}

type roleService struct {
	repo      repository.RoleRepository
	publisher events.Publisher
}

func NewRoleService(repo repository.RoleRepository, publisher events.Publisher) RoleService {
	return &roleService{repo: repo, publisher: publisher}
}

func (s *roleService) GetAllRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, toRoleResponse(&role))
	}
	return responses, nil
}

func (s *roleService) CreateRole(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if existing, err := s.repo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, fmt.Errorf("role with name %s already exists: %w", req.Name, apperror.ErrConflict)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := &model.Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	}

	if err := s.repo.Create(ctx, role); err != nil {
		return nil, database.TranslateError(err, "role")
	}

	s.publisher.Publish(ctx, "roles", "created", role.ID.String())

	res := toRoleResponse(role)
	return &res, nil
}

func (s *roleService) UpdateRole(ctx context.Context, id uuid.UUID, patch dto.RolePatch) (*dto.RoleResponse, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "role")
	}

	if patch.Name != nil {
		role.Name = *patch.Name
	}
	if patch.Description != nil {
		role.Description = *patch.Description
	}
	if patch.Permissions != nil {
		role.Permissions = *patch.Permissions
	}

	if err := s.repo.Update(ctx, role); err != nil {
		return nil, database.TranslateError(err, "role")
	}

	s.publisher.Publish(ctx, "roles", "updated", id.String())

	res := toRoleResponse(role)
	return &res, nil
}

// DeleteRole is blocked while UserRole rows still reference the role, so no
// user silently loses a permission bundle.
func (s *roleService) DeleteRole(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountAssignments(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("role is still assigned to %d user(s): %w", count, apperror.ErrConflict)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return database.TranslateError(err, "role")
	}

	s.publisher.Publish(ctx, "roles", "deleted", id.String())
	return nil
}

func toRoleResponse(role *model.Role) dto.RoleResponse {
	return dto.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: role.Permissions,
	}
}
