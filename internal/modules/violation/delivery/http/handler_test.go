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
	"anoa.com/sekolahadmin/internal/modules/violation/repository"
	violation "anoa.com/sekolahadmin/internal/modules/violation/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB, model.Student) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	major := model.Major{Code: "TKJ", Name: "Teknik Komputer dan Jaringan"}
	db.Create(&major)
	year := model.AcademicYear{Year: "2026/2027", StartDate: time.Now(), EndDate: time.Now().AddDate(1, 0, 0)}
	db.Create(&year)
	class := model.Class{Name: "X TKJ 1", Grade: 10, MajorID: major.ID, AcademicYearID: year.ID}
	db.Create(&class)
	db.Create(&model.User{ID: "user_2siswa"})
	student := model.Student{
		UserID: "user_2siswa", NISN: "0051234567", NIK: "3273010001", Name: "Budi Santoso",
		BirthPlace: "Bandung", BirthDate: time.Now(), Address: "-", Gender: "L",
		ClassID: class.ID, MajorID: major.ID, AcademicYearID: year.ID,
		EnrollmentDate: time.Now(), Status: "active",
	}
	db.Create(&student)

	svc := violation.NewViolationService(repository.NewViolationRepository(db), events.NewNoopPublisher())
	h := NewViolationHandler(svc)

	router := gin.New()
	router.GET("/api/typeviolations", h.GetAllTypes)
	router.POST("/api/typeviolations", h.CreateType)
	router.PUT("/api/typeviolations/:id", h.UpdateType)
	router.DELETE("/api/typeviolations/:id", h.DeleteType)
	router.GET("/api/violations", h.GetAllViolations)
	router.POST("/api/violations", h.CreateViolation)
	router.PUT("/api/violations/:id", h.UpdateViolation)
	router.DELETE("/api/violations/:id", h.DeleteViolation)
	return router, db, student
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

func createType(t *testing.T, router *gin.Engine) model.ViolationType {
	t.Helper()
	w := do(t, router, http.MethodPost, "/api/typeviolations", map[string]any{
		"name": "Terlambat", "category": "ringan", "points": 5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create type status = %d, body = %s", w.Code, w.Body.String())
	}
	var vt model.ViolationType
	if err := json.Unmarshal(w.Body.Bytes(), &vt); err != nil {
		t.Fatalf("decode type: %v", err)
	}
	return vt
}

func TestViolationTypeValidation(t *testing.T) {
	router, _, _ := setup(t)

	w := do(t, router, http.MethodPost, "/api/typeviolations", map[string]any{
		"name": "Terlambat", "category": "fatal", "points": 5,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad category status = %d, want 400", w.Code)
	}

	w = do(t, router, http.MethodPost, "/api/typeviolations", map[string]any{
		"name": "Terlambat", "category": "ringan",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing points status = %d, want 400", w.Code)
	}
}

func TestViolationRoundTripNestsStudentAndType(t *testing.T) {
	router, _, student := setup(t)
	vt := createType(t, router)

	w := do(t, router, http.MethodPost, "/api/violations", map[string]any{
		"student_id":        student.ID.String(),
		"violation_type_id": vt.ID.String(),
		"date":              "2026-08-17",
		"description":       "Terlambat upacara",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/api/violations", nil)
	var violations []model.Violation
	if err := json.Unmarshal(w.Body.Bytes(), &violations); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(violations))
	}

	got := violations[0]
	if got.Status != "reported" {
		t.Errorf("status = %q, want reported", got.Status)
	}
	if got.Student == nil || got.Student.Name != "Budi Santoso" {
		t.Error("list should nest the student")
	}
	if got.ViolationType == nil || got.ViolationType.Points != 5 {
		t.Error("list should nest the violation type")
	}
}

func TestCreateViolationUnknownTypeRejected(t *testing.T) {
	router, _, student := setup(t)

	w := do(t, router, http.MethodPost, "/api/violations", map[string]any{
		"student_id":        student.ID.String(),
		"violation_type_id": uuid.NewString(),
		"date":              "2026-08-17",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body = %s", w.Code, w.Body.String())
	}
}

func TestUpdateViolationStatus(t *testing.T) {
	router, db, student := setup(t)
	vt := createType(t, router)

	do(t, router, http.MethodPost, "/api/violations", map[string]any{
		"student_id":        student.ID.String(),
		"violation_type_id": vt.ID.String(),
		"date":              "2026-08-17",
	})
	var created model.Violation
	db.First(&created)

	w := do(t, router, http.MethodPut, "/api/violations/"+created.ID.String(), map[string]any{
		"status": "resolved",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}

	var after model.Violation
	db.First(&after, "id = ?", created.ID)
	if after.Status != "resolved" {
		t.Errorf("status = %q, want resolved", after.Status)
	}
}

func TestDeleteReferencedTypeBlocked(t *testing.T) {
	router, db, student := setup(t)
	vt := createType(t, router)

	do(t, router, http.MethodPost, "/api/violations", map[string]any{
		"student_id":        student.ID.String(),
		"violation_type_id": vt.ID.String(),
		"date":              "2026-08-17",
	})

	w := do(t, router, http.MethodDelete, "/api/typeviolations/"+vt.ID.String(), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}

	var count int64
	db.Model(&model.ViolationType{}).Count(&count)
	if count != 1 {
		t.Error("blocked delete must keep the type row")
	}
}
