package dto

import (
	sharedDto "anoa.com/sekolahadmin/pkg/dto"
)

type CreateViolationTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=ringan sedang berat"`
	Points      int    `json:"points" binding:"required,min=1"`
	Description string `json:"description"`
}

type ViolationTypePatch struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty" binding:"omitempty,oneof=ringan sedang berat"`
	Points      *int    `json:"points,omitempty" binding:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

func (p ViolationTypePatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Points == nil && p.Description == nil
}

type CreateViolationRequest struct {
	StudentID       string         `json:"student_id" binding:"required,uuid"`
	ViolationTypeID string         `json:"violation_type_id" binding:"required,uuid"`
	ClassID         *string        `json:"class_id,omitempty" binding:"omitempty,uuid"`
	Date            sharedDto.Date `json:"date" binding:"required"`
	Description     string         `json:"description"`
	Status          *string        `json:"status,omitempty" binding:"omitempty,oneof=reported processed resolved"`
}

type ViolationPatch struct {
	StudentID       *string         `json:"student_id,omitempty" binding:"omitempty,uuid"`
	ViolationTypeID *string         `json:"violation_type_id,omitempty" binding:"omitempty,uuid"`
	ClassID         *string         `json:"class_id,omitempty" binding:"omitempty,uuid"`
	Date            *sharedDto.Date `json:"date,omitempty"`
	Description     *string         `json:"description,omitempty"`
	Status          *string         `json:"status,omitempty" binding:"omitempty,oneof=reported processed resolved"`
}

func (p ViolationPatch) IsEmpty() bool {
	return p.StudentID == nil && p.ViolationTypeID == nil && p.ClassID == nil &&
		p.Date == nil && p.Description == nil && p.Status == nil
}
