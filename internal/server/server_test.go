package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/sekolahadmin/internal/config"
	"anoa.com/sekolahadmin/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTTTL:           time.Hour,
		IdentityCacheTTL: time.Minute,
	}
	return NewServer(cfg, db, nil)
}

// The identity provider endpoints are part of the documented external
// interface and must live under /api/clerk.
func TestClerkRoutesRegistered(t *testing.T) {
	srv := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/clerk/users"},
		{http.MethodGet, "/api/clerk/users/search"},
		{http.MethodPost, "/api/clerk/refresh"},
	}

	for _, rt := range routes {
		req := httptest.NewRequest(rt.method, rt.path, nil)
		w := httptest.NewRecorder()
		srv.engine.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound {
			t.Errorf("%s %s is not registered", rt.method, rt.path)
		}
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without a token = %d, want 401", rt.method, rt.path, w.Code)
		}
	}
}
