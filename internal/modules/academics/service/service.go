package academics

import (
	"context"
	"fmt"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/academics/dto"
	"anoa.com/sekolahadmin/internal/modules/academics/repository"
	"anoa.com/sekolahadmin/pkg/apperror"
	"anoa.com/sekolahadmin/pkg/database"
	"github.com/google/uuid"
)

type AcademicsService interface {
	GetAllMajors(ctx context.Context) ([]model.Major, error)
	CreateMajor(ctx context.Context, req dto.CreateMajorRequest) (*model.Major, error)
	UpdateMajor(ctx context.Context, id uuid.UUID, patch dto.MajorPatch) (*model.Major, error)
	DeleteMajor(ctx context.Context, id uuid.UUID) error

	GetAllAcademicYears(ctx context.Context) ([]model.AcademicYear, error)
	CreateAcademicYear(ctx context.Context, req dto.CreateAcademicYearRequest) (*model.AcademicYear, error)
	UpdateAcademicYear(ctx context.Context, id uuid.UUID, patch dto.AcademicYearPatch) (*model.AcademicYear, error)
	DeleteAcademicYear(ctx context.Context, id uuid.UUID) error

	GetAllClasses(ctx context.Context) ([]model.Class, error)
	CreateClass(ctx context.Context, req dto.CreateClassRequest) (*model.Class, error)
	UpdateClass(ctx context.Context, id uuid.UUID, patch dto.ClassPatch) (*model.Class, error)
	DeleteClass(ctx context.Context, id uuid.UUID) error

	GetAllSubjects(ctx context.Context) ([]model.Subject, error)
	CreateSubject(ctx context.Context, req dto.CreateSubjectRequest) (*model.Subject, error)
	UpdateSubject(ctx context.Context, id uuid.UUID, patch dto.SubjectPatch) (*model.Subject, error)
	DeleteSubject(ctx context.Context, id uuid.UUID) error
}

type academicsService struct {
	repo      repository.AcademicsRepository
	publisher events.Publisher
}

func NewAcademicsService(repo repository.AcademicsRepository, publisher events.Publisher) AcademicsService {
	return &academicsService{repo: repo, publisher: publisher}
}

func (s *academicsService) GetAllMajors(ctx context.Context) ([]model.Major, error) {
	return s.repo.FindAllMajors(ctx)
}

func (s *academicsService) CreateMajor(ctx context.Context, req dto.CreateMajorRequest) (*model.Major, error) {
	major := &model.Major{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreateMajor(ctx, major); err != nil {
		return nil, database.TranslateError(err, "major")
	}

	s.publisher.Publish(ctx, "majors", "created", major.ID.String())
	return major, nil
}

func (s *academicsService) UpdateMajor(ctx context.Context, id uuid.UUID, patch dto.MajorPatch) (*model.Major, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	fields := map[string]any{}
	if patch.Code != nil {
		fields["code"] = *patch.Code
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}

	if err := s.repo.UpdateMajor(ctx, id, fields); err != nil {
		return nil, database.TranslateError(err, "major")
	}

	s.publisher.Publish(ctx, "majors", "updated", id.String())
	major, err := s.repo.FindMajorByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "major")
	}
	return major, nil
}

// DeleteMajor is blocked while classes, students or subjects still point at
// the major.
func (s *academicsService) DeleteMajor(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountMajorReferences(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("major is still referenced by %d record(s): %w", count, apperror.ErrConflict)
	}

	if err := s.repo.DeleteMajor(ctx, id); err != nil {
		return database.TranslateError(err, "major")
	}

	s.publisher.Publish(ctx, "majors", "deleted", id.String())
	return nil
}

func (s *academicsService) GetAllAcademicYears(ctx context.Context) ([]model.AcademicYear, error) {
	return s.repo.FindAllAcademicYears(ctx)
}

func (s *academicsService) CreateAcademicYear(ctx context.Context, req dto.CreateAcademicYearRequest) (*model.AcademicYear, error) {
	year := &model.AcademicYear{
		Year:      req.Year,
		StartDate: req.StartDate.Time,
		EndDate:   req.EndDate.Time,
	}
	if req.IsActive != nil {
		year.IsActive = *req.IsActive
	}

	if err := s.repo.CreateAcademicYear(ctx, year); err != nil {
		return nil, database.TranslateError(err, "academic year")
	}
	if year.IsActive {
		if err := s.repo.DeactivateOtherYears(ctx, year.ID); err != nil {
			return nil, err
		}
	}

	s.publisher.Publish(ctx, "academicyears", "created", year.ID.String())
	return year, nil
}

func (s *academicsService) UpdateAcademicYear(ctx context.Context, id uuid.UUID, patch dto.AcademicYearPatch) (*model.AcademicYear, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	fields := map[string]any{}
	if patch.Year != nil {
		fields["year"] = *patch.Year
	}
	if patch.StartDate != nil {
		fields["start_date"] = patch.StartDate.Time
	}
	if patch.EndDate != nil {
		fields["end_date"] = patch.EndDate.Time
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}

	if err := s.repo.UpdateAcademicYear(ctx, id, fields); err != nil {
		return nil, database.TranslateError(err, "academic year")
	}
	if patch.IsActive != nil && *patch.IsActive {
		if err := s.repo.DeactivateOtherYears(ctx, id); err != nil {
			return nil, err
		}
	}

	s.publisher.Publish(ctx, "academicyears", "updated", id.String())
	year, err := s.repo.FindAcademicYearByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "academic year")
	}
	return year, nil
}

func (s *academicsService) DeleteAcademicYear(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountAcademicYearReferences(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("academic year is still referenced by %d record(s): %w", count, apperror.ErrConflict)
	}

	if err := s.repo.DeleteAcademicYear(ctx, id); err != nil {
		return database.TranslateError(err, "academic year")
	}

	s.publisher.Publish(ctx, "academicyears", "deleted", id.String())
	return nil
}

func (s *academicsService) GetAllClasses(ctx context.Context) ([]model.Class, error) {
	return s.repo.FindAllClasses(ctx)
}

func (s *academicsService) CreateClass(ctx context.Context, req dto.CreateClassRequest) (*model.Class, error) {
	majorID, err := uuid.Parse(req.MajorID)
	if err != nil {
		return nil, fmt.Errorf("invalid major id: %w", apperror.ErrBadRequest)
	}
	yearID, err := uuid.Parse(req.AcademicYearID)
	if err != nil {
		return nil, fmt.Errorf("invalid academic year id: %w", apperror.ErrBadRequest)
	}

	class := &model.Class{
		Name:           req.Name,
		Grade:          req.Grade,
		MajorID:        majorID,
		AcademicYearID: yearID,
		Capacity:       36,
	}
	if req.Capacity != nil {
		class.Capacity = *req.Capacity
	}

	if err := s.repo.CreateClass(ctx, class); err != nil {
		return nil, database.TranslateError(err, "class")
	}

	s.publisher.Publish(ctx, "classes", "created", class.ID.String())
	return class, nil
}

func (s *academicsService) UpdateClass(ctx context.Context, id uuid.UUID, patch dto.ClassPatch) (*model.Class, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Grade != nil {
		fields["grade"] = *patch.Grade
	}
	if patch.MajorID != nil {
		fields["major_id"] = *patch.MajorID
	}
	if patch.AcademicYearID != nil {
		fields["academic_year_id"] = *patch.AcademicYearID
	}
	if patch.Capacity != nil {
		fields["capacity"] = *patch.Capacity
	}

	if err := s.repo.UpdateClass(ctx, id, fields); err != nil {
		return nil, database.TranslateError(err, "class")
	}

	s.publisher.Publish(ctx, "classes", "updated", id.String())
	class, err := s.repo.FindClassByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "class")
	}
	return class, nil
}

func (s *academicsService) DeleteClass(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountClassReferences(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("class is still referenced by %d record(s): %w", count, apperror.ErrConflict)
	}

	if err := s.repo.DeleteClass(ctx, id); err != nil {
		return database.TranslateError(err, "class")
	}

	s.publisher.Publish(ctx, "classes", "deleted", id.String())
	return nil
}

func (s *academicsService) GetAllSubjects(ctx context.Context) ([]model.Subject, error) {
	return s.repo.FindAllSubjects(ctx)
}

func (s *academicsService) CreateSubject(ctx context.Context, req dto.CreateSubjectRequest) (*model.Subject, error) {
	subject := &model.Subject{
		Code:    req.Code,
		Name:    req.Name,
		Credits: 2,
	}
	if req.Credits != nil {
		subject.Credits = *req.Credits
	}
	if req.MajorID != nil {
		majorID, err := uuid.Parse(*req.MajorID)
		if err != nil {
			return nil, fmt.Errorf("invalid major id: %w", apperror.ErrBadRequest)
		}
		subject.MajorID = &majorID
	}

	if err := s.repo.CreateSubject(ctx, subject); err != nil {
		return nil, database.TranslateError(err, "subject")
	}

	s.publisher.Publish(ctx, "subjects", "created", subject.ID.String())
	return subject, nil
}

func (s *academicsService) UpdateSubject(ctx context.Context, id uuid.UUID, patch dto.SubjectPatch) (*model.Subject, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	fields := map[string]any{}
	if patch.Code != nil {
		fields["code"] = *patch.Code
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Credits != nil {
		fields["credits"] = *patch.Credits
	}
	if patch.MajorID != nil {
		fields["major_id"] = *patch.MajorID
	}

	if err := s.repo.UpdateSubject(ctx, id, fields); err != nil {
		return nil, database.TranslateError(err, "subject")
	}

	s.publisher.Publish(ctx, "subjects", "updated", id.String())
	subject, err := s.repo.FindSubjectByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "subject")
	}
	return subject, nil
}

func (s *academicsService) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountSubjectReferences(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("subject is still referenced by %d record(s): %w", count, apperror.ErrConflict)
	}

	if err := s.repo.DeleteSubject(ctx, id); err != nil {
		return database.TranslateError(err, "subject")
	}

	s.publisher.Publish(ctx, "subjects", "deleted", id.String())
	return nil
}
