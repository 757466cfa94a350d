package dto

import (
	"github.com/google/uuid"
)

// CreateUserRequest carries the identity record id chosen from the picker.
type CreateUserRequest struct {
	ID string `json:"id" binding:"required"`
}

// UserPatch is the allow-listed update payload. Unknown fields are rejected
// at the boundary by strict decoding.
type UserPatch struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	ClerkID  *string `json:"clerk_id,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Name == nil &&
		p.Phone == nil && p.IsActive == nil && p.ClerkID == nil && p.Password == nil
}

type AssignRoleRequest struct {
	RoleID string `json:"role_id" binding:"required,uuid"`
}

// ProfileRef is the nested zero-or-one specialized profile projection.
type ProfileRef struct {
	ID uuid.UUID `json:"id"`
}

type RoleResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
}

type UserResponse struct {
	ID       string         `json:"id"`
	ClerkID  *string        `json:"clerk_id,omitempty"`
	Username *string        `json:"username,omitempty"`
	Email    *string        `json:"email,omitempty"`
	Name     *string        `json:"name,omitempty"`
	Phone    *string        `json:"phone,omitempty"`
	IsActive bool           `json:"is_active"`
	Student  *ProfileRef    `json:"student"`
	Teacher  *ProfileRef    `json:"teacher"`
	Parent   *ProfileRef    `json:"parent"`
	Roles    []RoleResponse `json:"roles"`
}
