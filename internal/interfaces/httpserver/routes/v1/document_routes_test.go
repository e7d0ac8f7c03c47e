package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"kbchat/internal/domain/document"
	"kbchat/internal/interfaces/httpserver/handlers"
	v1 "kbchat/internal/interfaces/httpserver/routes/v1"
)

// fakeFetcher serves scripted file bytes by platform file ID.
type fakeFetcher struct {
	files map[string][]byte
}

func (f *fakeFetcher) FetchContent(ctx context.Context, fileID string) ([]byte, error) {
	data, ok := f.files[fileID]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func newDocumentRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := document.NewRegistry([]document.Document{
		{ID: "doc_guide", Filename: "guide.pdf", Title: "User Guide", ContentType: "application/pdf", Size: 4, PlatformFileID: "file_1"},
		{ID: "doc_notes", Filename: "notes.txt", Title: "Notes", PlatformFileID: "file_missing"},
	})
	fetcher := &fakeFetcher{files: map[string][]byte{"file_1": []byte("%PDF")}}
	handler := handlers.NewDocumentHandler(registry, fetcher)

	router := gin.New()
	v1.RegisterDocumentRoutes(router.Group("/v1"), handler)
	return router
}

func TestListDocumentsRoute(t *testing.T) {
	router := newDocumentRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Object string              `json:"object"`
		Data   []document.Document `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Object != "list" || len(body.Data) != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Data[0].ID != "doc_guide" || body.Data[0].ContentType != "application/pdf" {
		t.Errorf("unexpected first document: %+v", body.Data[0])
	}
}

func TestGetDocumentFileRoute(t *testing.T) {
	router := newDocumentRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc_guide/file", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "%PDF" {
		t.Errorf("unexpected file bytes: %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("unexpected content type: %q", ct)
	}
}

func TestGetDocumentFileRouteUnknownID(t *testing.T) {
	router := newDocumentRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc_missing/file", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetDocumentFileRoutePlatformFailure(t *testing.T) {
	router := newDocumentRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc_notes/file", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
