package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ViolationType is a categorized, point-valued infraction type.
type ViolationType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Category    string    `gorm:"size:50;not null" json:"category"` // ringan / sedang / berat
	Points      int       `gorm:"not null" json:"points"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (v *ViolationType) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID, err = uuid.NewV7()
	}
	return
}

type Violation struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID       uuid.UUID      `gorm:"type:uuid;not null" json:"student_id"`
	Student         *Student       `json:"student,omitempty"`
	ViolationTypeID uuid.UUID      `gorm:"type:uuid;not null" json:"violation_type_id"`
	ViolationType   *ViolationType `json:"violation_type,omitempty"`
	ClassID         *uuid.UUID     `gorm:"type:uuid" json:"class_id,omitempty"`
	Date            time.Time      `gorm:"not null" json:"date"`
	Description     string         `gorm:"type:text" json:"description"`
	Status          string         `gorm:"size:20;default:reported" json:"status"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (v *Violation) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID, err = uuid.NewV7()
	}
	return
}
