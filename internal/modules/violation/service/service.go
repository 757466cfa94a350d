package violation

import (
	"context"
	"fmt"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/violation/dto"
	"anoa.com/sekolahadmin/internal/modules/violation/repository"
	"anoa.com/sekolahadmin/pkg/apperror"
	"anoa.com/sekolahadmin/pkg/database"
	"github.com/google/uuid"
)

type ViolationService interface {
	GetAllTypes(ctx context.Context) ([]model.ViolationType, error)
	CreateType(ctx context.Context, req dto.CreateViolationTypeRequest) (*model.ViolationType, error)
	UpdateType(ctx context.Context, id uuid.UUID, patch dto.ViolationTypePatch) (*model.ViolationType, error)
	DeleteType(ctx context.Context, id uuid.UUID) error

	GetAllViolations(ctx context.Context) ([]model.Violation, error)
	CreateViolation(ctx context.Context, req dto.CreateViolationRequest) (*model.Violation, error)
	UpdateViolation(ctx context.Context, id uuid.UUID, patch dto.ViolationPatch) (*model.Violation, error)
	DeleteViolation(ctx context.Context, id uuid.UUID) error
}

type violationService struct {
	repo      repository.ViolationRepository
	publisher events.Publisher
}

func NewViolationService(repo repository.ViolationRepository, publisher events.Publisher) ViolationService {
	return &violationService{repo: repo, publisher: publisher}
}

func (s *violationService) GetAllTypes(ctx context.Context) ([]model.ViolationType, error) {
	return s.repo.FindAllTypes(ctx)
}

func (s *violationService) CreateType(ctx context.Context, req dto.CreateViolationTypeRequest) (*model.ViolationType, error) {
	t := &model.ViolationType{
		Name:        req.Name,
		Category:    req.Category,
		Points:      req.Points,
		Description: req.Description,
	}
	if err := s.repo.CreateType(ctx, t); err != nil {
		return nil, database.TranslateError(err, "violation type")
	}

	s.publisher.Publish(ctx, "typeviolations", "created", t.ID.String())
	return t, nil
}

func (s *violationService) UpdateType(ctx context.Context, id uuid.UUID, patch dto.ViolationTypePatch) (*model.ViolationType, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Points != nil {
		fields["points"] = *patch.Points
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}

	if err := s.repo.UpdateType(ctx, id, fields); err != nil {
		return nil, database.TranslateError(err, "violation type")
	}

	s.publisher.Publish(ctx, "typeviolations", "updated", id.String())
	t, err := s.repo.FindTypeByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "violation type")
	}
	return t, nil
}

// DeleteType is blocked while recorded violations still reference the type,
// otherwise their point values would dangle.
func (s *violationService) DeleteType(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountTypeReferences(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("violation type is still referenced by %d violation(s): %w", count, apperror.ErrConflict)
	}

	if err := s.repo.DeleteType(ctx, id); err != nil {
		return database.TranslateError(err, "violation type")
	}

	s.publisher.Publish(ctx, "typeviolations", "deleted", id.String())
	return nil
}

func (s *violationService) GetAllViolations(ctx context.Context) ([]model.Violation, error) {
	return s.repo.FindAll(ctx)
}

func (s *violationService) CreateViolation(ctx context.Context, req dto.CreateViolationRequest) (*model.Violation, error) {
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("invalid student id: %w", apperror.ErrBadRequest)
	}
	typeID, err := uuid.Parse(req.ViolationTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid violation type id: %w", apperror.ErrBadRequest)
	}

	if _, err := s.repo.FindTypeByID(ctx, typeID); err != nil {
		return nil, database.TranslateError(err, "violation type")
	}

	v := &model.Violation{
		StudentID:       studentID,
		ViolationTypeID: typeID,
		Date:            req.Date.Time,
		Description:     req.Description,
		Status:          "reported",
	}
	if req.ClassID != nil {
		classID, err := uuid.Parse(*req.ClassID)
		if err != nil {
			return nil, fmt.Errorf("invalid class id: %w", apperror.ErrBadRequest)
		}
		v.ClassID = &classID
	}
	if req.Status != nil {
		v.Status = *req.Status
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, database.TranslateError(err, "violation")
	}

	s.publisher.Publish(ctx, "violations", "created", v.ID.String())
	return s.repo.FindByID(ctx, v.ID)
}

func (s *violationService) UpdateViolation(ctx context.Context, id uuid.UUID, patch dto.ViolationPatch) (*model.Violation, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	fields := map[string]any{}
	if patch.StudentID != nil {
		fields["student_id"] = *patch.StudentID
	}
	if patch.ViolationTypeID != nil {
		fields["violation_type_id"] = *patch.ViolationTypeID
	}
	if patch.ClassID != nil {
		fields["class_id"] = *patch.ClassID
	}
	if patch.Date != nil {
		fields["date"] = patch.Date.Time
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, database.TranslateError(err, "violation")
	}

	s.publisher.Publish(ctx, "violations", "updated", id.String())
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "violation")
	}
	return v, nil
}

func (s *violationService) DeleteViolation(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return database.TranslateError(err, "violation")
	}

	s.publisher.Publish(ctx, "violations", "deleted", id.String())
	return nil
}
