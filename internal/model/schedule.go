package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is one timetable slot. The composite unique index mirrors the
// timetable rule that a teacher cannot give the same subject to the same
// class twice at the same starting slot.
type Schedule struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClassID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_slot" json:"class_id"`
	Class          *Class    `json:"class,omitempty"`
	SubjectID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_slot" json:"subject_id"`
	Subject        *Subject  `json:"subject,omitempty"`
	TeacherID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_slot" json:"teacher_id"`
	Teacher        *Teacher  `json:"teacher,omitempty"`
	AcademicYearID uuid.UUID `gorm:"type:uuid;not null" json:"academic_year_id"`
	DayOfWeek      int       `gorm:"not null;uniqueIndex:idx_schedule_slot" json:"day_of_week"` // 1 = Monday
	StartTime      string    `gorm:"size:5;not null;uniqueIndex:idx_schedule_slot" json:"start_time"`
	EndTime        string    `gorm:"size:5;not null" json:"end_time"`
	Room           *string   `gorm:"size:50" json:"room,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID, err = uuid.NewV7()
	}
	return
}
