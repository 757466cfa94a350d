package repository

import (
	"context"

	"anoa.com/sekolahadmin/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ViolationRepository interface {
	CreateType(ctx context.Context, t *model.ViolationType) error
	FindAllTypes(ctx context.Context) ([]model.ViolationType, error)
	FindTypeByID(ctx context.Context, id uuid.UUID) (*model.ViolationType, error)
	UpdateType(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteType(ctx context.Context, id uuid.UUID) error
	CountTypeReferences(ctx context.Context, id uuid.UUID) (int64, error)

	Create(ctx context.Context, v *model.Violation) error
	FindAll(ctx context.Context) ([]model.Violation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Violation, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type violationRepository struct {
	db *gorm.DB
}

func NewViolationRepository(db *gorm.DB) ViolationRepository {
	return &violationRepository{db: db}
}

func (r *violationRepository) CreateType(ctx context.Context, t *model.ViolationType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *violationRepository) FindAllTypes(ctx context.Context) ([]model.ViolationType, error) {
	var types []model.ViolationType
	err := r.db.WithContext(ctx).Order("category, points").Find(&types).Error
	return types, err
}

func (r *violationRepository) FindTypeByID(ctx context.Context, id uuid.UUID) (*model.ViolationType, error) {
	var t model.ViolationType
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *violationRepository) UpdateType(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&model.ViolationType{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *violationRepository) DeleteType(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.ViolationType{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *violationRepository) CountTypeReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Violation{}).Where("violation_type_id = ?", id).Count(&count).Error
	return count, err
}

func (r *violationRepository) Create(ctx context.Context, v *model.Violation) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *violationRepository) FindAll(ctx context.Context) ([]model.Violation, error) {
	var violations []model.Violation
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("ViolationType").
		Order("date desc").
		Find(&violations).Error
	return violations, err
}

func (r *violationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Violation, error) {
	var v model.Violation
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("ViolationType").
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *violationRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&model.Violation{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *violationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Violation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
