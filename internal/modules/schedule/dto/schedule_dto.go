package dto

type CreateScheduleRequest struct {
	ClassID        string  `json:"class_id" binding:"required,uuid"`
	SubjectID      string  `json:"subject_id" binding:"required,uuid"`
	TeacherID      string  `json:"teacher_id" binding:"required,uuid"`
	AcademicYearID string  `json:"academic_year_id" binding:"required,uuid"`
	DayOfWeek      int     `json:"day_of_week" binding:"required,min=1,max=7"`
	StartTime      string  `json:"start_time" binding:"required,len=5"`
	EndTime        string  `json:"end_time" binding:"required,len=5"`
	Room           *string `json:"room,omitempty"`
}

type SchedulePatch struct {
	ClassID        *string `json:"class_id,omitempty" binding:"omitempty,uuid"`
	SubjectID      *string `json:"subject_id,omitempty" binding:"omitempty,uuid"`
	TeacherID      *string `json:"teacher_id,omitempty" binding:"omitempty,uuid"`
	AcademicYearID *string `json:"academic_year_id,omitempty" binding:"omitempty,uuid"`
	DayOfWeek      *int    `json:"day_of_week,omitempty" binding:"omitempty,min=1,max=7"`
	StartTime      *string `json:"start_time,omitempty" binding:"omitempty,len=5"`
	EndTime        *string `json:"end_time,omitempty" binding:"omitempty,len=5"`
	Room           *string `json:"room,omitempty"`
}

func (p SchedulePatch) IsEmpty() bool {
	return p.ClassID == nil && p.SubjectID == nil && p.TeacherID == nil &&
		p.AcademicYearID == nil && p.DayOfWeek == nil && p.StartTime == nil &&
		p.EndTime == nil && p.Room == nil
}

type UpdateScheduleRequest struct {
	ID   string        `json:"id" binding:"required,uuid"`
	Data SchedulePatch `json:"data"`
}
