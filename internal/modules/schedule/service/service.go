package schedule

import (
	"context"
	"fmt"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/schedule/dto"
	"anoa.com/sekolahadmin/internal/modules/schedule/repository"
	"anoa.com/sekolahadmin/pkg/apperror"
	"anoa.com/sekolahadmin/pkg/database"
	"github.com/google/uuid"
)

type ScheduleService interface {
	GetAllSchedules(ctx context.Context) ([]model.Schedule, error)
	GetSchedule(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest) (*model.Schedule, error)
	UpdateSchedule(ctx context.Context, req dto.UpdateScheduleRequest) (*model.Schedule, error)
	DeleteSchedule(ctx context.Context, id uuid.UUID) error
}

type scheduleService struct {
	repo      repository.ScheduleRepository
	publisher events.Publisher
}

func NewScheduleService(repo repository.ScheduleRepository, publisher events.Publisher) ScheduleService {
	return &scheduleService{repo: repo, publisher: publisher}
}

func (s *scheduleService) GetAllSchedules(ctx context.Context) ([]model.Schedule, error) {
	return s.repo.FindAll(ctx)
}

func (s *scheduleService) GetSchedule(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, database.TranslateError(err, "schedule")
	}
	return schedule, nil
}

// CreateSchedule relies on the composite unique index to reject a slot that
// is already taken, which surfaces to the caller as a conflict.
func (s *scheduleService) CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest) (*model.Schedule, error) {
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("invalid class id: %w", apperror.ErrBadRequest)
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("invalid subject id: %w", apperror.ErrBadRequest)
	}
	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return nil, fmt.Errorf("invalid teacher id: %w", apperror.ErrBadRequest)
	}
	yearID, err := uuid.Parse(req.AcademicYearID)
	if err != nil {
		return nil, fmt.Errorf("invalid academic year id: %w", apperror.ErrBadRequest)
	}

	schedule := &model.Schedule{
		ClassID:        classID,
		SubjectID:      subjectID,
		TeacherID:      teacherID,
		AcademicYearID: yearID,
		DayOfWeek:      req.DayOfWeek,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Room:           req.Room,
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, database.TranslateError(err, "schedule")
	}

	s.publisher.Publish(ctx, "schedules", "created", schedule.ID.String())
	return schedule, nil
}

func (s *scheduleService) UpdateSchedule(ctx context.Context, req dto.UpdateScheduleRequest) (*model.Schedule, error) {
	if req.Data.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields provided: %w", apperror.ErrBadRequest)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule id: %w", apperror.ErrBadRequest)
	}

	fields := map[string]any{}
	patch := req.Data
	if patch.ClassID != nil {
		fields["class_id"] = *patch.ClassID
	}
	if patch.SubjectID != nil {
		fields["subject_id"] = *patch.SubjectID
	}
	if patch.TeacherID != nil {
		fields["teacher_id"] = *patch.TeacherID
	}
	if patch.AcademicYearID != nil {
		fields["academic_year_id"] = *patch.AcademicYearID
	}
	if patch.DayOfWeek != nil {
		fields["day_of_week"] = *patch.DayOfWeek
	}
	if patch.StartTime != nil {
		fields["start_time"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		fields["end_time"] = *patch.EndTime
	}
	if patch.Room != nil {
		fields["room"] = *patch.Room
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, database.TranslateError(err, "schedule")
	}

	s.publisher.Publish(ctx, "schedules", "updated", req.ID)

	return s.GetSchedule(ctx, id)
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return database.TranslateError(err, "schedule")
	}

	s.publisher.Publish(ctx, "schedules", "deleted", id.String())
	return nil
}
