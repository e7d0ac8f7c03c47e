package platform_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kbchat/internal/infrastructure/platform"
)

func TestSearchClient(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"file_id": "file_1",
					"filename": "handbook.pdf",
					"score": 0.92,
					"content": [
						{"type": "text", "text": "Part one. "},
						{"type": "text", "text": "Part two."},
						{"type": "image", "text": "ignored"}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	client := platform.NewSearchClient(server.URL, "sk-test", 5*time.Second)

	passages, err := client.Search(context.Background(), "vs_123", "vacation policy", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotPath != "/vector_stores/vs_123/search" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if gotBody["query"] != "vacation policy" {
		t.Errorf("unexpected query %v", gotBody["query"])
	}
	if gotBody["max_num_results"] != float64(5) {
		t.Errorf("unexpected max_num_results %v", gotBody["max_num_results"])
	}

	if len(passages) != 1 {
		t.Fatalf("expected 1 passage, got %d", len(passages))
	}
	p := passages[0]
	if p.FileID != "file_1" || p.Filename != "handbook.pdf" {
		t.Errorf("unexpected passage metadata: %+v", p)
	}
	if p.Text != "Part one. Part two." {
		t.Errorf("text chunks must be concatenated, got %q", p.Text)
	}
	if p.Score != 0.92 {
		t.Errorf("unexpected score %v", p.Score)
	}
}

func TestSearchClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	client := platform.NewSearchClient(server.URL, "sk-test", 5*time.Second)

	if _, err := client.Search(context.Background(), "vs_123", "q", 1); err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
}

func TestSearchClientRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server starts the background connection
		// read that detects the client disconnect; otherwise the request
		// context is never cancelled and this handler blocks forever.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := platform.NewSearchClient(server.URL, "sk-test", 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.Search(ctx, "vs_123", "q", 1); err == nil {
		t.Fatal("expected a cancellation error")
	}
}
