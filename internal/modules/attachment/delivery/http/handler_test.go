package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	attachment "anoa.com/sekolahadmin/internal/modules/attachment/service"
	"github.com/gin-gonic/gin"
)

type fakeStorage struct {
	url string
	err error
}

func (f *fakeStorage) UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	io.Copy(io.Discard, r)
	return f.url, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, fileURL string) error { return nil }

func newRouter(storage *fakeStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAttachmentHandler(attachment.NewAttachmentService(storage, "sekolah_admin"))
	router := gin.New()
	router.POST("/api/upload", h.Upload)
	return router
}

func multipartBody(t *testing.T, field, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.Copy(fw, strings.NewReader(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestUploadReturnsFileURL(t *testing.T) {
	router := newRouter(&fakeStorage{url: "https://res.cloudinary.com/demo/image/upload/v1/sekolah_admin/foto.webp"})

	body, contentType := multipartBody(t, "file", "foto.png", "fake image bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var res map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasSuffix(res["fileUrl"], "foto.webp") {
		t.Errorf("fileUrl = %q", res["fileUrl"])
	}
}

func TestUploadWithoutFileRejected(t *testing.T) {
	router := newRouter(&fakeStorage{url: "ignored"})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadProviderFailureIsBadGateway(t *testing.T) {
	router := newRouter(&fakeStorage{err: errors.New("cloudinary: 500")})

	body, contentType := multipartBody(t, "file", "foto.png", "fake image bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if strings.Contains(w.Body.String(), "cloudinary: 500") {
		t.Error("provider detail must not leak to the client")
	}
}
