package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string     `gorm:"size:64;uniqueIndex;not null" json:"user_id"`
	User           *User      `json:"user,omitempty"`
	NISN           string     `gorm:"size:20;uniqueIndex;not null" json:"nisn"`
	NIK            string     `gorm:"size:20;uniqueIndex;not null" json:"nik"`
	Name           string     `gorm:"size:100;not null" json:"name"`
	BirthPlace     string     `gorm:"size:100;not null" json:"birth_place"`
	BirthDate      time.Time  `gorm:"not null" json:"birth_date"`
	Address        string     `gorm:"type:text;not null" json:"address"`
	Gender         string     `gorm:"size:1;not null" json:"gender"` // 'L' / 'P'
	ClassID        uuid.UUID  `gorm:"type:uuid;not null" json:"class_id"`
	Class          *Class     `json:"class,omitempty"`
	MajorID        uuid.UUID  `gorm:"type:uuid;not null" json:"major_id"`
	Major          *Major     `json:"major,omitempty"`
	AcademicYearID uuid.UUID  `gorm:"type:uuid;not null" json:"academic_year_id"`
	EnrollmentDate time.Time  `gorm:"not null" json:"enrollment_date"`
	GraduationDate *time.Time `json:"graduation_date,omitempty"`
	ParentPhone    *string    `gorm:"size:20" json:"parent_phone,omitempty"`
	Status         string     `gorm:"size:20;default:active" json:"status"`
	AvatarURL      *string    `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID, err = uuid.NewV7()
	}
	return
}

type Teacher struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string     `gorm:"size:64;uniqueIndex;not null" json:"user_id"`
	User       *User      `json:"user,omitempty"`
	EmployeeID string     `gorm:"size:30;uniqueIndex;not null" json:"employee_id"`
	NIK        string     `gorm:"size:20;uniqueIndex;not null" json:"nik"`
	Name       string     `gorm:"size:100;not null" json:"name"`
	BirthPlace string     `gorm:"size:100;not null" json:"birth_place"`
	BirthDate  time.Time  `gorm:"not null" json:"birth_date"`
	Address    string     `gorm:"type:text;not null" json:"address"`
	Gender     string     `gorm:"size:1;default:L" json:"gender"`
	Position   *string    `gorm:"size:100" json:"position,omitempty"`
	StartDate  time.Time  `gorm:"autoCreateTime" json:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Status     string     `gorm:"size:20;default:active" json:"status"`
	AvatarURL  *string    `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID, err = uuid.NewV7()
	}
	return
}

type Parent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"size:64;uniqueIndex;not null" json:"user_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	Student   *Student  `json:"student,omitempty"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Relation  string    `gorm:"size:20;not null" json:"relation"` // Ayah / Ibu / Wali
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (p *Parent) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}
