package dto

import (
	sharedDto "anoa.com/sekolahadmin/pkg/dto"
)

type CreateStudentRequest struct {
	UserID         string          `json:"user_id" binding:"required"`
	NISN           string          `json:"nisn" binding:"required"`
	NIK            string          `json:"nik" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	BirthPlace     string          `json:"birth_place" binding:"required"`
	BirthDate      sharedDto.Date  `json:"birth_date" binding:"required"`
	Address        string          `json:"address" binding:"required"`
	Gender         string          `json:"gender" binding:"required,oneof=L P"`
	ClassID        string          `json:"class_id" binding:"required,uuid"`
	MajorID        string          `json:"major_id" binding:"required,uuid"`
	AcademicYearID string          `json:"academic_year_id" binding:"required,uuid"`
	EnrollmentDate sharedDto.Date  `json:"enrollment_date" binding:"required"`
	GraduationDate *sharedDto.Date `json:"graduation_date,omitempty"`
	ParentPhone    *string         `json:"parent_phone,omitempty"`
	Status         *string         `json:"status,omitempty" binding:"omitempty,oneof=active inactive graduated dropped"`
	AvatarURL      *string         `json:"avatar_url,omitempty"`
}

// StudentPatch is the allow-listed `data` payload of an update. Unknown
// fields are rejected at the boundary by strict decoding.
type StudentPatch struct {
	NISN           *string         `json:"nisn,omitempty"`
	NIK            *string         `json:"nik,omitempty"`
	Name           *string         `json:"name,omitempty"`
	BirthPlace     *string         `json:"birth_place,omitempty"`
	BirthDate      *sharedDto.Date `json:"birth_date,omitempty"`
	Address        *string         `json:"address,omitempty"`
	Gender         *string         `json:"gender,omitempty" binding:"omitempty,oneof=L P"`
	ClassID        *string         `json:"class_id,omitempty" binding:"omitempty,uuid"`
	MajorID        *string         `json:"major_id,omitempty" binding:"omitempty,uuid"`
	AcademicYearID *string         `json:"academic_year_id,omitempty" binding:"omitempty,uuid"`
	EnrollmentDate *sharedDto.Date `json:"enrollment_date,omitempty"`
	GraduationDate *sharedDto.Date `json:"graduation_date,omitempty"`
	ParentPhone    *string         `json:"parent_phone,omitempty"`
	Status         *string         `json:"status,omitempty" binding:"omitempty,oneof=active inactive graduated dropped"`
	AvatarURL      *string         `json:"avatar_url,omitempty"`
}

func (p StudentPatch) IsEmpty() bool {
	return p.NISN == nil && p.NIK == nil && p.Name == nil && p.BirthPlace == nil &&
		p.BirthDate == nil && p.Address == nil && p.Gender == nil && p.ClassID == nil &&
		p.MajorID == nil && p.AcademicYearID == nil && p.EnrollmentDate == nil &&
		p.GraduationDate == nil && p.ParentPhone == nil && p.Status == nil && p.AvatarURL == nil
}

// UpdateStudentRequest carries the target id in the body, the same wire
// shape the admin forms send.
type UpdateStudentRequest struct {
	ID   string       `json:"id" binding:"required,uuid"`
	Data StudentPatch `json:"data"`
}
