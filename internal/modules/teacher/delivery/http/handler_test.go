package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"anoa.com/sekolahadmin/internal/events"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/teacher/repository"
	teacher "anoa.com/sekolahadmin/internal/modules/teacher/service"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&model.User{ID: "user_2guru"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := teacher.NewTeacherService(repository.NewTeacherRepository(db), events.NewNoopPublisher())
	h := NewTeacherHandler(svc)

	router := gin.New()
	router.GET("/api/teachers", h.GetAllTeachers)
	router.POST("/api/teachers", h.CreateTeacher)
	router.PUT("/api/teachers", h.UpdateTeacher)
	router.DELETE("/api/teachers", h.DeleteTeacher)
	return router, db
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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
	router.ServeHTTP(w, req)
	return w
}

func createBody() map[string]any {
	return map[string]any{
		"user_id":     "user_2guru",
		"employee_id": "196802101990031002",
		"nik":         "3273012002680001",
		"name":        "Dewi Lestari",
		"birth_place": "Cimahi",
		"birth_date":  "1985-02-10",
		"address":     "Jl. Kenanga No. 8",
		"gender":      "P",
		"position":    "Wali Kelas X TKJ 1",
	}
}

func TestCreateTeacherRoundTrip(t *testing.T) {
	router, _ := setup(t)

	w := do(t, router, http.MethodPost, "/api/teachers", createBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/api/teachers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}

	var teachers []model.Teacher
	if err := json.Unmarshal(w.Body.Bytes(), &teachers); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(teachers) != 1 {
		t.Fatalf("got %d teachers, want 1", len(teachers))
	}

	got := teachers[0]
	if got.Name != "Dewi Lestari" || got.Gender != "P" || got.EmployeeID != "196802101990031002" {
		t.Errorf("fields did not round trip: %+v", got)
	}
	if got.Position == nil || *got.Position != "Wali Kelas X TKJ 1" {
		t.Error("optional position should round trip")
	}
	if got.Status != "active" {
		t.Errorf("status = %q, want active", got.Status)
	}
	if got.User == nil || got.User.ID != "user_2guru" {
		t.Error("list should nest the owning user")
	}
}

func TestCreateTeacherMissingFieldRejected(t *testing.T) {
	router, db := setup(t)

	body := createBody()
	delete(body, "employee_id")

	w := do(t, router, http.MethodPost, "/api/teachers", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var count int64
	db.Model(&model.Teacher{}).Count(&count)
	if count != 0 {
		t.Error("invalid request must not be persisted")
	}
}

func TestCreateTeacherDuplicateEmployeeIDConflicts(t *testing.T) {
	router, db := setup(t)

	if w := do(t, router, http.MethodPost, "/api/teachers", createBody()); w.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", w.Code)
	}

	db.Create(&model.User{ID: "user_2guru2"})
	second := createBody()
	second["user_id"] = "user_2guru2"
	second["nik"] = "3273012002680099"

	w := do(t, router, http.MethodPost, "/api/teachers", second)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate employee_id status = %d, want 409, body = %s", w.Code, w.Body.String())
	}
}

func TestUpdateTeacherByBodyID(t *testing.T) {
	router, db := setup(t)

	do(t, router, http.MethodPost, "/api/teachers", createBody())
	var created model.Teacher
	if err := db.First(&created).Error; err != nil {
		t.Fatalf("load created: %v", err)
	}

	w := do(t, router, http.MethodPut, "/api/teachers", map[string]any{
		"id":   created.ID.String(),
		"data": map[string]any{"position": "Kepala Lab Komputer", "status": "inactive"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}

	var after model.Teacher
	db.First(&after, "id = ?", created.ID)
	if after.Position == nil || *after.Position != "Kepala Lab Komputer" || after.Status != "inactive" {
		t.Errorf("update not applied: %+v", after)
	}
	if after.Name != created.Name {
		t.Error("untouched fields must survive the patch")
	}
}

func TestUpdateTeacherUnknownFieldRejected(t *testing.T) {
	router, db := setup(t)

	do(t, router, http.MethodPost, "/api/teachers", createBody())
	var created model.Teacher
	db.First(&created)

	w := do(t, router, http.MethodPut, "/api/teachers", map[string]any{
		"id":   created.ID.String(),
		"data": map[string]any{"salary": 10000000},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}
}

func TestDeleteTeacherByBodyID(t *testing.T) {
	router, db := setup(t)

	do(t, router, http.MethodPost, "/api/teachers", createBody())
	var created model.Teacher
	db.First(&created)

	w := do(t, router, http.MethodDelete, "/api/teachers", map[string]any{"id": created.ID.String()})
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body = %s", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodDelete, "/api/teachers", map[string]any{"id": created.ID.String()})
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
}

func TestUpdateTeacherClearsEndDate(t *testing.T) {
	router, db := setup(t)

	do(t, router, http.MethodPost, "/api/teachers", createBody())
	var created model.Teacher
	if err := db.First(&created).Error; err != nil {
		t.Fatalf("load created: %v", err)
	}

	w := do(t, router, http.MethodPut, "/api/teachers", map[string]any{
		"id":   created.ID.String(),
		"data": map[string]any{"end_date": "2027-06-30", "status": "retired"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("set end_date status = %d, body = %s", w.Code, w.Body.String())
	}
	var retired model.Teacher
	if err := db.First(&retired, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("load retired: %v", err)
	}
	if retired.EndDate == nil {
		t.Fatal("end_date should be set before clearing")
	}

	w = do(t, router, http.MethodPut, "/api/teachers", map[string]any{
		"id":   created.ID.String(),
		"data": map[string]any{"end_date": "", "status": "active"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("clear end_date status = %d, body = %s", w.Code, w.Body.String())
	}
	var active model.Teacher
	if err := db.First(&active, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("load active: %v", err)
	}
	if active.EndDate != nil {
		t.Errorf("end_date = %v, want NULL after clearing", active.EndDate)
	}
}
