package student

import (
	"context"
	"fmt"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/student/dto"
	"anoa.com/sekolahadmin/internal/modules/student/repository"
	"anoa.com/sekolahadmin/pkg/apperror"
	"anoa.com/sekolahadmin/pkg/database"
	"github.com/google/uuid"
)

type StudentService interface {
	GetAllStudents(ctx context.Context) ([]model.Student, error)
	GetStudent(ctx context.Context, id uuid.UUID) (*model.Student, error)
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*model.Student, error)
	UpdateStudent(ctx context.Context, req dto.UpdateStudentRequest) (*model.Student, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) error
}

type studentService struct {
	repo      repository.StudentRepository
	publisher events.Publisher
}

func NewStudentService(repo repository.StudentRepository, publisher events.Publisher) StudentService {
	return &studentService{repo: repo, publisher: publisher}
}

func (s *studentService) GetAllStudents(ctx context.Context) ([]model.Student, error) {
	return s.repo.FindAll(ctx)
}

func (s *studentService) GetStudent(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "student")
	}
	return student, nil
}

func (s *studentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*model.Student, error) {
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("invalid class id: %w", apperror.ErrBadRequest)
	}
	majorID, err := uuid.Parse(req.MajorID)
	if err != nil {
		return nil, fmt.Errorf("invalid major id: %w", apperror.ErrBadRequest)
	}
	yearID, err := uuid.Parse(req.AcademicYearID)
	if err != nil {
		return nil, fmt.Errorf("invalid academic year id: %w", apperror.ErrBadRequest)
	}

	student := &model.Student{
		UserID:         req.UserID,
		NISN:           req.NISN,
		NIK:            req.NIK,
		Name:           req.Name,
		BirthPlace:     req.BirthPlace,
		BirthDate:      req.BirthDate.Time,
		Address:        req.Address,
		Gender:         req.Gender,
		ClassID:        classID,
		MajorID:        majorID,
		AcademicYearID: yearID,
		EnrollmentDate: req.EnrollmentDate.Time,
		ParentPhone:    req.ParentPhone,
		Status:         "active",
	}
	if req.GraduationDate != nil {
		t := req.GraduationDate.Time
		student.GraduationDate = &t
	}
	if req.Status != nil {
		student.Status = *req.Status
	}
	if req.AvatarURL != nil {
		student.AvatarURL = req.AvatarURL
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, database.TranslateError(err, "student")
	}

	s.publisher.Publish(ctx, "students", "created", student.ID.String())
	return student, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, req dto.UpdateStudentRequest) (*model.Student, error) {
	if req.Data.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid student id: %w", apperror.ErrBadRequest)
	}

	fields := map[string]any{}
	patch := req.Data
	if patch.NISN != nil {
		fields["nisn"] = *patch.NISN
	}
	if patch.NIK != nil {
		fields["nik"] = *patch.NIK
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.BirthPlace != nil {
		fields["birth_place"] = *patch.BirthPlace
	}
	if patch.BirthDate != nil {
		fields["birth_date"] = patch.BirthDate.Time
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.Gender != nil {
		fields["gender"] = *patch.Gender
	}
	if patch.ClassID != nil {
		fields["class_id"] = *patch.ClassID
	}
	if patch.MajorID != nil {
		fields["major_id"] = *patch.MajorID
	}
	if patch.AcademicYearID != nil {
		fields["academic_year_id"] = *patch.AcademicYearID
	}
	if patch.EnrollmentDate != nil {
		fields["enrollment_date"] = patch.EnrollmentDate.Time
	}
	if patch.GraduationDate != nil {
		// An empty date clears the column, so un-graduating a student is possible.
		if patch.GraduationDate.IsZero() {
			fields["graduation_date"] = nil
		} else {
			fields["graduation_date"] = patch.GraduationDate.Time
		}
	}
	if patch.ParentPhone != nil {
		fields["parent_phone"] = *patch.ParentPhone
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.AvatarURL != nil {
		fields["avatar_url"] = *patch.AvatarURL
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, database.TranslateError(err, "student")
	}

	s.publisher.Publish(ctx, "students", "updated", req.ID)

	return s.GetStudent(ctx, id)
}

func (s *studentService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return database.TranslateError(err, "student")
	}

	s.publisher.Publish(ctx, "students", "deleted", id.String())
	return nil
}
