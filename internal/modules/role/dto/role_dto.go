package dto

import "github.com/google/uuid"

type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=50"`
	Description string   `json:"description" binding:"required"`
	Permissions []string `json:"permissions" binding:"required"`
}

// RolePatch is the allow-listed update payload for roles.
type RolePatch struct {
	Name        *string   `json:"name,omitempty" binding:"omitempty,max=50"`
	Description *string   `json:"description,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}

func (p RolePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Permissions == nil
}

type RoleResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
}
