package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// User is the identity anchor row. ID doubles as the primary key used by the
// specialized profiles; ClerkID is the optional external key into the
// identity provider and may go stale without breaking anything locally.
type User struct {
	ID           string     `gorm:"size:64;primaryKey" json:"id"`
	ClerkID      *string    `gorm:"size:64;uniqueIndex" json:"clerk_id,omitempty"`
	Username     *string    `gorm:"size:50;uniqueIndex" json:"username,omitempty"`
	Email        *string    `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	PasswordHash *string    `gorm:"size:255" json:"-"`
	Name         *string    `gorm:"size:100" json:"name,omitempty"`
	Phone        *string    `gorm:"size:20" json:"phone,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	Student      *Student   `gorm:"constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Teacher      *Teacher   `gorm:"constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
	Parent       *Parent    `gorm:"constraint:OnDelete:CASCADE" json:"parent,omitempty"`
	Roles        []UserRole `gorm:"constraint:OnDelete:CASCADE" json:"roles,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Role struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Permissions pq.StringArray `gorm:"type:text[]" json:"permissions"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID, err = uuid.NewV7()
	}
	return
}

// UserRole grants a User one Role. The composite primary key enforces the
// (user, role) uniqueness.
type UserRole struct {
	UserID    string    `gorm:"size:64;primaryKey" json:"user_id"`
	RoleID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"role_id"`
	Role      Role      `gorm:"constraint:OnDelete:CASCADE" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
