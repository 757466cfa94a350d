package violation

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/violation/dto"
	"anoa.com/sekolahadmin/internal/modules/violation/repository"
	"anoa.com/sekolahadmin/pkg/apperror"
	sharedDto "anoa.com/sekolahadmin/pkg/dto"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (ViolationService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewViolationService(repository.NewViolationRepository(db), events.NewNoopPublisher()), db
}

func TestCreateViolationRejectsMalformedReferenceID(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.CreateViolation(context.Background(), dto.CreateViolationRequest{
		StudentID:       "not-a-uuid",
		ViolationTypeID: "not-a-uuid",
		Date:            sharedDto.NewDate(time.Now()),
		Description:     "terlambat masuk kelas",
	})
	if !errors.Is(err, apperror.ErrBadRequest) {
		t.Fatalf("CreateViolation error = %v, want ErrBadRequest", err)
	}

	var count int64
	db.Model(&model.Violation{}).Count(&count)
	if count != 0 {
		t.Fatalf("violations persisted = %d, want 0", count)
	}
}
