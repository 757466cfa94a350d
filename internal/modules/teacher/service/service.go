package teacher

import (
	"context"
	"fmt"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/teacher/dto"
	"anoa.com/sekolahadmin/internal/modules/teacher/repository"
	"anoa.com/sekolahadmin/pkg/apperror"
	"anoa.com/sekolahadmin/pkg/database"
	"github.com/google/uuid"
)

type TeacherService interface {
	GetAllTeachers(ctx context.Context) ([]model.Teacher, error)
	GetTeacher(ctx context.Context, id uuid.UUID) (*model.Teacher, error)
	CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*model.Teacher, error)
	UpdateTeacher(ctx context.Context, req dto.UpdateTeacherRequest) (*model.Teacher, error)
	DeleteTeacher(ctx context.Context, id uuid.UUID) error
}

type teacherService struct {
	repo      repository.TeacherRepository
	publisher events.Publisher
}

func NewTeacherService(repo repository.TeacherRepository, publisher events.Publisher) TeacherService {
	return &teacherService{repo: repo, publisher: publisher}
}

func (s *teacherService) GetAllTeachers(ctx context.Context) ([]model.Teacher, error) {
	return s.repo.FindAll(ctx)
}

func (s *teacherService) GetTeacher(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "teacher")
	}
	return teacher, nil
}

func (s *teacherService) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*model.Teacher, error) {
	teacher := &model.Teacher{
		UserID:     req.UserID,
		EmployeeID: req.EmployeeID,
		NIK:        req.NIK,
		Name:       req.Name,
		BirthPlace: req.BirthPlace,
		BirthDate:  req.BirthDate.Time,
		Address:    req.Address,
		Gender:     req.Gender,
		Position:   req.Position,
		Status:     "active",
		AvatarURL:  req.AvatarURL,
	}
	if req.StartDate != nil {
		teacher.StartDate = req.StartDate.Time
	}
	if req.EndDate != nil {
		t := req.EndDate.Time
		teacher.EndDate = &t
	}
	if req.Status != nil {
		teacher.Status = *req.Status
	}

	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, database.TranslateError(err, "teacher")
	}

	s.publisher.Publish(ctx, "teachers", "created", teacher.ID.String())
	return teacher, nil
}

func (s *teacherService) UpdateTeacher(ctx context.Context, req dto.UpdateTeacherRequest) (*model.Teacher, error) {
	if req.Data.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid teacher id: %w", apperror.ErrBadRequest)
	}

	fields := map[string]any{}
	patch := req.Data
	if patch.EmployeeID != nil {
		fields["employee_id"] = *patch.EmployeeID
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
	if patch.Position != nil {
		fields["position"] = *patch.Position
	}
	if patch.StartDate != nil {
		fields["start_date"] = patch.StartDate.Time
	}
	if patch.EndDate != nil {
		if patch.EndDate.IsZero() {
			fields["end_date"] = nil
		} else {
			fields["end_date"] = patch.EndDate.Time
		}
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.AvatarURL != nil {
		fields["avatar_url"] = *patch.AvatarURL
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, database.TranslateError(err, "teacher")
	}

	s.publisher.Publish(ctx, "teachers", "updated", req.ID)

	return s.GetTeacher(ctx, id)
}

func (s *teacherService) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return database.TranslateError(err, "teacher")
	}

	s.publisher.Publish(ctx, "teachers", "deleted", id.String())
	return nil
}
