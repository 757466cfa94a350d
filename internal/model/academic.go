package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Major struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code        string    `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Major) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID, err = uuid.NewV7()
	}
	return
}

type AcademicYear struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Year      string    `gorm:"size:10;uniqueIndex;not null" json:"year"` // e.g. "2026/2027"
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	IsActive  bool      `gorm:"default:false" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *AcademicYear) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID, err = uuid.NewV7()
	}
	return
}

type Class struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Grade          int       `gorm:"not null" json:"grade"`
	MajorID        uuid.UUID `gorm:"type:uuid;not null" json:"major_id"`
	Major          *Major    `json:"major,omitempty"`
	AcademicYearID uuid.UUID `gorm:"type:uuid;not null" json:"academic_year_id"`
	Capacity       int       `gorm:"default:36" json:"capacity"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Class) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

type Subject struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string     `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	Credits   int        `gorm:"default:2" json:"credits"`
	MajorID   *uuid.UUID `gorm:"type:uuid" json:"major_id,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (s *Subject) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID, err = uuid.NewV7()
	}
	return
}
