package user

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	identityDto "anoa.com/sekolahadmin/internal/modules/identity/dto"
	identity "anoa.com/sekolahadmin/internal/modules/identity/service"
	"anoa.com/sekolahadmin/internal/modules/user/dto"
	"anoa.com/sekolahadmin/internal/modules/user/repository"
	"anoa.com/sekolahadmin/pkg/apperror"
	"anoa.com/sekolahadmin/pkg/database"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)
	GetDirectory(ctx context.Context) ([]identityDto.DirectoryEntry, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id string, patch dto.UserPatch) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
	AssignRole(ctx context.Context, userID string, roleID uuid.UUID) error
	RemoveRole(ctx context.Context, userID string, roleID uuid.UUID) error
}

type userService struct {
	repo      repository.UserRepository
	directory identity.DirectoryService
	publisher events.Publisher
}

func NewUserService(repo repository.UserRepository, directory identity.DirectoryService, publisher events.Publisher) UserService {
	return &userService{
		repo:      repo,
		directory: directory,
		publisher: publisher,
	}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "user")
	}

	res := toUserResponse(user)
	return &res, nil
}

// GetDirectory returns every user decorated with its resolved identity
// record in a single batched lookup.
func (s *userService) GetDirectory(ctx context.Context) ([]identityDto.DirectoryEntry, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.directory.Resolve(ctx, users)
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.FindByID(ctx, req.ID); err == nil {
		return nil, fmt.Errorf("user %s already exists: %w", req.ID, apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	clerkID := req.ID
	user := &model.User{
		ID:       req.ID,
		ClerkID:  &clerkID,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, database.TranslateError(err, "user")
	}

	s.publisher.Publish(ctx, "users", "created", user.ID)

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, patch dto.UserPatch) (*dto.UserResponse, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	fields := map[string]any{}
	if patch.Username != nil {
		fields["username"] = *patch.Username
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}
	if patch.ClerkID != nil {
		if *patch.ClerkID == "" {
			fields["clerk_id"] = nil
		} else {
			fields["clerk_id"] = *patch.ClerkID
		}
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = string(hashed)
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, database.TranslateError(err, "user")
	}

	s.publisher.Publish(ctx, "users", "updated", id)

	return s.GetUser(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return database.TranslateError(err, "user")
	}

	s.publisher.Publish(ctx, "users", "deleted", id)
	return nil
}

func (s *userService) AssignRole(ctx context.Context, userID string, roleID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		return database.TranslateError(err, "user")
	}

	if err := s.repo.AssignRole(ctx, userID, roleID); err != nil {
		return database.TranslateError(err, "user role")
	}

	s.publisher.Publish(ctx, "users", "updated", userID)
	return nil
}

func (s *userService) RemoveRole(ctx context.Context, userID string, roleID uuid.UUID) error {
	if err := s.repo.RemoveRole(ctx, userID, roleID); err != nil {
		return database.TranslateError(err, "user role")
	}

	s.publisher.Publish(ctx, "users", "updated", userID)
	return nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	res := dto.UserResponse{
		ID:       user.ID,
		ClerkID:  user.ClerkID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Phone:    user.Phone,
		IsActive: user.IsActive,
		Roles:    []dto.RoleResponse{},
	}

	if user.Student != nil {
		res.Student = &dto.ProfileRef{ID: user.Student.ID}
	}
	if user.Teacher != nil {
		res.Teacher = &dto.ProfileRef{ID: user.Teacher.ID}
	}
	if user.Parent != nil {
		res.Parent = &dto.ProfileRef{ID: user.Parent.ID}
	}
	for _, ur := range user.Roles {
		res.Roles = append(res.Roles, dto.RoleResponse{
			ID:          ur.Role.ID,
			Name:        ur.Role.Name,
			Description: ur.Role.Description,
			Permissions: ur.Role.Permissions,
		})
	}

	return res
}
