package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/schedule/repository"
	schedule "anoa.com/sekolahadmin/internal/modules/schedule/service"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	router  *gin.Engine
	db      *gorm.DB
	class   model.Class
	subject model.Subject
	teacher model.Teacher
	year    model.AcademicYear
}

func setup(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{db: db}

	major := model.Major{Code: "RPL", Name: "Rekayasa Perangkat Lunak"}
	db.Create(&major)
	f.year = model.AcademicYear{Year: "2026/2027", StartDate: time.Now(), EndDate: time.Now().AddDate(1, 0, 0)}
	db.Create(&f.year)
	f.class = model.Class{Name: "XI RPL 2", Grade: 11, MajorID: major.ID, AcademicYearID: f.year.ID}
	db.Create(&f.class)
	f.subject = model.Subject{Code: "PBO", Name: "Pemrograman Berorientasi Objek"}
	db.Create(&f.subject)
	db.Create(&model.User{ID: "user_2guru"})
	f.teacher = model.Teacher{
		UserID: "user_2guru", EmployeeID: "19680210", NIK: "3273010001",
		Name: "Dewi Lestari", BirthPlace: "Cimahi", BirthDate: time.Now(),
		Address: "Jl. Kenanga", Gender: "P",
	}
	db.Create(&f.teacher)

	svc := schedule.NewScheduleService(repository.NewScheduleRepository(db), events.NewNoopPublisher())
	h := NewScheduleHandler(svc)

	router := gin.New()
	router.GET("/api/schedules", h.GetAllSchedules)
	router.POST("/api/schedules", h.CreateSchedule)
	router.PUT("/api/schedules", h.UpdateSchedule)
	router.DELETE("/api/schedules", h.DeleteSchedule)
	f.router = router
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) slotBody() map[string]any {
	return map[string]any{
		"class_id":         f.class.ID.String(),
		"subject_id":       f.subject.ID.String(),
		"teacher_id":       f.teacher.ID.String(),
		"academic_year_id": f.year.ID.String(),
		"day_of_week":      1,
		"start_time":       "07:00",
		"end_time":         "08:30",
		"room":             "Lab 2",
	}
}

func TestCreateScheduleRoundTrip(t *testing.T) {
	f := setup(t)

	w := f.do(t, http.MethodPost, "/api/schedules", f.slotBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	w = f.do(t, http.MethodGet, "/api/schedules", nil)
	var schedules []model.Schedule
	if err := json.Unmarshal(w.Body.Bytes(), &schedules); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(schedules) != 1 {
		t.Fatalf("got %d schedules, want 1", len(schedules))
	}

	got := schedules[0]
	if got.DayOfWeek != 1 || got.StartTime != "07:00" || got.EndTime != "08:30" {
		t.Errorf("slot did not round trip: %+v", got)
	}
	if got.Class == nil || got.Subject == nil || got.Teacher == nil {
		t.Error("list should nest class, subject and teacher")
	}
}

func TestCreateScheduleRejectsInvalidSlot(t *testing.T) {
	f := setup(t)

	body := f.slotBody()
	body["day_of_week"] = 9

	w := f.do(t, http.MethodPost, "/api/schedules", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateScheduleDuplicateSlotConflicts(t *testing.T) {
	f := setup(t)

	if w := f.do(t, http.MethodPost, "/api/schedules", f.slotBody()); w.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", w.Code)
	}

	w := f.do(t, http.MethodPost, "/api/schedules", f.slotBody())
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate slot status = %d, want 409, body = %s", w.Code, w.Body.String())
	}

	// A different starting slot is fine
	shifted := f.slotBody()
	shifted["start_time"] = "08:30"
	shifted["end_time"] = "10:00"
	if w := f.do(t, http.MethodPost, "/api/schedules", shifted); w.Code != http.StatusCreated {
		t.Fatalf("shifted slot status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestUpdateScheduleByBodyID(t *testing.T) {
	f := setup(t)

	f.do(t, http.MethodPost, "/api/schedules", f.slotBody())
	var created model.Schedule
	if err := f.db.First(&created).Error; err != nil {
		t.Fatalf("load created: %v", err)
	}

	w := f.do(t, http.MethodPut, "/api/schedules", map[string]any{
		"id":   created.ID.String(),
		"data": map[string]any{"room": "Lab 1", "day_of_week": 3},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}

	var after model.Schedule
	f.db.First(&after, "id = ?", created.ID)
	if after.Room == nil || *after.Room != "Lab 1" || after.DayOfWeek != 3 {
		t.Errorf("update not applied: %+v", after)
	}
}

func TestDeleteScheduleByBodyID(t *testing.T) {
	f := setup(t)

	f.do(t, http.MethodPost, "/api/schedules", f.slotBody())
	var created model.Schedule
	f.db.First(&created)

	w := f.do(t, http.MethodDelete, "/api/schedules", map[string]any{"id": created.ID.String()})
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = f.do(t, http.MethodDelete, "/api/schedules", map[string]any{"id": created.ID.String()})
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
}
