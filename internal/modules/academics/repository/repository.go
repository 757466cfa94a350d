package repository

import (
	"context"

	"anoa.com/sekolahadmin/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicsRepository persists the reference data the other modules hang
// off of: majors, academic years, classes and subjects.
type AcademicsRepository interface {
	CreateMajor(ctx context.Context, major *model.Major) error
	FindAllMajors(ctx context.Context) ([]model.Major, error)
	FindMajorByID(ctx context.Context, id uuid.UUID) (*model.Major, error)
	UpdateMajor(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteMajor(ctx context.Context, id uuid.UUID) error
	CountMajorReferences(ctx context.Context, id uuid.UUID) (int64, error)

	CreateAcademicYear(ctx context.Context, year *model.AcademicYear) error
	FindAllAcademicYears(ctx context.Context) ([]model.AcademicYear, error)
	FindAcademicYearByID(ctx context.Context, id uuid.UUID) (*model.AcademicYear, error)
	UpdateAcademicYear(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeactivateOtherYears(ctx context.Context, keep uuid.UUID) error
	DeleteAcademicYear(ctx context.Context, id uuid.UUID) error
	CountAcademicYearReferences(ctx context.Context, id uuid.UUID) (int64, error)

	CreateClass(ctx context.Context, class *model.Class) error
	FindAllClasses(ctx context.Context) ([]model.Class, error)
	FindClassByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	UpdateClass(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteClass(ctx context.Context, id uuid.UUID) error
	CountClassReferences(ctx context.Context, id uuid.UUID) (int64, error)

	CreateSubject(ctx context.Context, subject *model.Subject) error
	FindAllSubjects(ctx context.Context) ([]model.Subject, error)
	FindSubjectByID(ctx context.Context, id uuid.UUID) (*model.Subject, error)
	UpdateSubject(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteSubject(ctx context.Context, id uuid.UUID) error
	CountSubjectReferences(ctx context.Context, id uuid.UUID) (int64, error)
}

type academicsRepository struct {
	db *gorm.DB
}

func NewAcademicsRepository(db *gorm.DB) AcademicsRepository {
	return &academicsRepository{db: db}
}

func (r *academicsRepository) CreateMajor(ctx context.Context, major *model.Major) error {
	return r.db.WithContext(ctx).Create(major).Error
}

func (r *academicsRepository) FindAllMajors(ctx context.Context) ([]model.Major, error) {
	var majors []model.Major
	err := r.db.WithContext(ctx).Order("code").Find(&majors).Error
	return majors, err
}

func (r *academicsRepository) FindMajorByID(ctx context.Context, id uuid.UUID) (*model.Major, error) {
	var major model.Major
	if err := r.db.WithContext(ctx).First(&major, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &major, nil
}

func (r *academicsRepository) UpdateMajor(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.db.WithContext(ctx), &model.Major{}, id, fields)
}

func (r *academicsRepository) DeleteMajor(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.Major{}, id)
}

// CountMajorReferences counts rows in every table that points at the major.
func (r *academicsRepository) CountMajorReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var total, count int64
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Class{}).Where("major_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count
	if err := db.Model(&model.Student{}).Where("major_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count
	if err := db.Model(&model.Subject{}).Where("major_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count
	return total, nil
}

func (r *academicsRepository) CreateAcademicYear(ctx context.Context, year *model.AcademicYear) error {
	return r.db.WithContext(ctx).Create(year).Error
}

func (r *academicsRepository) FindAllAcademicYears(ctx context.Context) ([]model.AcademicYear, error) {
	var years []model.AcademicYear
	err := r.db.WithContext(ctx).Order("year desc").Find(&years).Error
	return years, err
}

func (r *academicsRepository) FindAcademicYearByID(ctx context.Context, id uuid.UUID) (*model.AcademicYear, error) {
	var year model.AcademicYear
	if err := r.db.WithContext(ctx).First(&year, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *academicsRepository) UpdateAcademicYear(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.db.WithContext(ctx), &model.AcademicYear{}, id, fields)
}

// DeactivateOtherYears keeps at most one academic year active.
func (r *academicsRepository) DeactivateOtherYears(ctx context.Context, keep uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.AcademicYear{}).
		Where("id <> ? AND is_active", keep).
		Update("is_active", false).Error
}

func (r *academicsRepository) DeleteAcademicYear(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.AcademicYear{}, id)
}

func (r *academicsRepository) CountAcademicYearReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var total, count int64
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Class{}).Where("academic_year_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count
	if err := db.Model(&model.Student{}).Where("academic_year_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count
	if err := db.Model(&model.Schedule{}).Where("academic_year_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count
	return total, nil
}

func (r *academicsRepository) CreateClass(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *academicsRepository) FindAllClasses(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).Preload("Major").Order("grade, name").Find(&classes).Error
	return classes, err
}

func (r *academicsRepository) FindClassByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).Preload("Major").First(&class, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *academicsRepository) UpdateClass(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.db.WithContext(ctx), &model.Class{}, id, fields)
}

func (r *academicsRepository) DeleteClass(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.Class{}, id)
}

func (r *academicsRepository) CountClassReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var total, count int64
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Student{}).Where("class_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count
	if err := db.Model(&model.Schedule{}).Where("class_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count
	return total, nil
}

func (r *academicsRepository) CreateSubject(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *academicsRepository) FindAllSubjects(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).Order("code").Find(&subjects).Error
	return subjects, err
}

func (r *academicsRepository) FindSubjectByID(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.WithContext(ctx).First(&subject, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *academicsRepository) UpdateSubject(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return updateByID(r.db.WithContext(ctx), &model.Subject{}, id, fields)
}

func (r *academicsRepository) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.Subject{}, id)
}

func (r *academicsRepository) CountSubjectReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Schedule{}).Where("subject_id = ?", id).Count(&count).Error
	return count, err
}

func updateByID(db *gorm.DB, target any, id uuid.UUID, fields map[string]any) error {
	res := db.Model(target).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteByID(db *gorm.DB, target any, id uuid.UUID) error {
	res := db.Delete(target, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
