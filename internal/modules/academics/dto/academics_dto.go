package dto

import (
	sharedDto "anoa.com/sekolahadmin/pkg/dto"
)

type CreateMajorRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type MajorPatch struct {
	Code        *string `json:"code,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p MajorPatch) IsEmpty() bool {
	return p.Code == nil && p.Name == nil && p.Description == nil
}

type CreateAcademicYearRequest struct {
	Year      string         `json:"year" binding:"required"`
	StartDate sharedDto.Date `json:"start_date" binding:"required"`
	EndDate   sharedDto.Date `json:"end_date" binding:"required"`
	IsActive  *bool          `json:"is_active,omitempty"`
}

type AcademicYearPatch struct {
	Year      *string         `json:"year,omitempty"`
	StartDate *sharedDto.Date `json:"start_date,omitempty"`
	EndDate   *sharedDto.Date `json:"end_date,omitempty"`
	IsActive  *bool           `json:"is_active,omitempty"`
}

func (p AcademicYearPatch) IsEmpty() bool {
	return p.Year == nil && p.StartDate == nil && p.EndDate == nil && p.IsActive == nil
}

type CreateClassRequest struct {
	Name           string `json:"name" binding:"required"`
	Grade          int    `json:"grade" binding:"required,min=10,max=12"`
	MajorID        string `json:"major_id" binding:"required,uuid"`
	AcademicYearID string `json:"academic_year_id" binding:"required,uuid"`
	Capacity       *int   `json:"capacity,omitempty" binding:"omitempty,min=1"`
}

type ClassPatch struct {
	Name           *string `json:"name,omitempty"`
	Grade          *int    `json:"grade,omitempty" binding:"omitempty,min=10,max=12"`
	MajorID        *string `json:"major_id,omitempty" binding:"omitempty,uuid"`
	AcademicYearID *string `json:"academic_year_id,omitempty" binding:"omitempty,uuid"`
	Capacity       *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
}

func (p ClassPatch) IsEmpty() bool {
	return p.Name == nil && p.Grade == nil && p.MajorID == nil &&
		p.AcademicYearID == nil && p.Capacity == nil
}

type CreateSubjectRequest struct {
	Code    string  `json:"code" binding:"required"`
	Name    string  `json:"name" binding:"required"`
	Credits *int    `json:"credits,omitempty" binding:"omitempty,min=1"`
	MajorID *string `json:"major_id,omitempty" binding:"omitempty,uuid"`
}

type SubjectPatch struct {
	Code    *string `json:"code,omitempty"`
	Name    *string `json:"name,omitempty"`
	Credits *int    `json:"credits,omitempty" binding:"omitempty,min=1"`
	MajorID *string `json:"major_id,omitempty" binding:"omitempty,uuid"`
}

func (p SubjectPatch) IsEmpty() bool {
	return p.Code == nil && p.Name == nil && p.Credits == nil && p.MajorID == nil
}
