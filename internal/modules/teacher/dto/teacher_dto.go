package dto

import (
	sharedDto "anoa.com/sekolahadmin/pkg/dto"
)

type CreateTeacherRequest struct {
	UserID     string          `json:"user_id" binding:"required"`
	EmployeeID string          `json:"employee_id" binding:"required"`
	NIK        string          `json:"nik" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	BirthPlace string          `json:"birth_place" binding:"required"`
	BirthDate  sharedDto.Date  `json:"birth_date" binding:"required"`
	Address    string          `json:"address" binding:"required"`
	Gender     string          `json:"gender" binding:"required,oneof=L P"`
	Position   *string         `json:"position,omitempty"`
	StartDate  *sharedDto.Date `json:"start_date,omitempty"`
	EndDate    *sharedDto.Date `json:"end_date,omitempty"`
	Status     *string         `json:"status,omitempty" binding:"omitempty,oneof=active inactive retired"`
	AvatarURL  *string         `json:"avatar_url,omitempty"`
}

type TeacherPatch struct {
	EmployeeID *string         `json:"employee_id,omitempty"`
	NIK        *string         `json:"nik,omitempty"`
	Name       *string         `json:"name,omitempty"`
	BirthPlace *string         `json:"birth_place,omitempty"`
	BirthDate  *sharedDto.Date `json:"birth_date,omitempty"`
	Address    *string         `json:"address,omitempty"`
	Gender     *string         `json:"gender,omitempty" binding:"omitempty,oneof=L P"`
	Position   *string         `json:"position,omitempty"`
	StartDate  *sharedDto.Date `json:"start_date,omitempty"`
	EndDate    *sharedDto.Date `json:"end_date,omitempty"`
	Status     *string         `json:"status,omitempty" binding:"omitempty,oneof=active inactive retired"`
	AvatarURL  *string         `json:"avatar_url,omitempty"`
}

func (p TeacherPatch) IsEmpty() bool {
	return p.EmployeeID == nil && p.NIK == nil && p.Name == nil && p.BirthPlace == nil &&
		p.BirthDate == nil && p.Address == nil && p.Gender == nil && p.Position == nil &&
		p.StartDate == nil && p.EndDate == nil && p.Status == nil && p.AvatarURL == nil
}

type UpdateTeacherRequest struct {
	ID   string       `json:"id" binding:"required,uuid"`
	Data TeacherPatch `json:"data"`
}
