package schedule

import (
	"context"
	"errors"
	"testing"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/schedule/dto"
	"anoa.com/sekolahadmin/internal/modules/schedule/repository"
	"anoa.com/sekolahadmin/pkg/apperror"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (ScheduleService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewScheduleService(repository.NewScheduleRepository(db), events.NewNoopPublisher()), db
}

func TestCreateScheduleRejectsMalformedReferenceID(t *testing.T) {
	svc, db := newTestService(t)

	req := dto.CreateScheduleRequest{
		ClassID:        "not-a-uuid",
		SubjectID:      "not-a-uuid",
		TeacherID:      "not-a-uuid",
		AcademicYearID: "not-a-uuid",
		DayOfWeek:      1,
		StartTime:      "07:00",
		EndTime:        "08:30",
	}

	_, err := svc.CreateSchedule(context.Background(), req)
	if !errors.Is(err, apperror.ErrBadRequest) {
		t.Fatalf("CreateSchedule error = %v, want ErrBadRequest", err)
	}

	var count int64
	db.Model(&model.Schedule{}).Count(&count)
	if count != 0 {
		t.Fatalf("schedules persisted = %d, want 0", count)
	}
}
