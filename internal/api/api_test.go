package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"staticd/internal/config"
	"staticd/internal/logging"
)

// newTestServer creates a server over a temp content root
func newTestServer(t *testing.T, files map[string]string) *Server {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Content.Root = root
	cfg.Environment = "test"

	logger := logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})

	server, err := NewServer(cfg, logger)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if response["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got '%v'", response["status"])
	}
	if response["environment"] != "test" {
		t.Errorf("expected environment 'test', got '%v'", response["environment"])
	}
	if _, ok := response["uptime"]; !ok {
		t.Error("response should have 'uptime' field")
	}
	if _, ok := response["timestamp"]; !ok {
		t.Error("response should have 'timestamp' field")
	}
}

func TestHealthEndpoint_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestInfoEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if response["name"] != "staticd" {
		t.Errorf("expected name 'staticd', got '%v'", response["name"])
	}
}

func TestStaticServing(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"index.html": "<html>home</html>",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "<html>home</html>" {
		t.Errorf("unexpected body %q", body)
	}
	if reqID := w.Header().Get("X-Request-ID"); reqID == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestStaticNotFound(t *testing.T) {
	server := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/missing.css", nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestStaticTraversalRejected(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"index.html": "<html></html>",
	})

	req := httptest.NewRequest(http.MethodGet, "/..%2f..%2fetc/passwd", nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestStaticConditionalRequest(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"app.js": "console.log('hi')",
	})

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("first response has no ETag")
	}

	req = httptest.NewRequest(http.MethodGet, "/app.js", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusNotModified {
		t.Errorf("expected status 304, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("304 must have an empty body, got %q", w.Body.String())
	}
}

func TestOptionsPreflightHandled(t *testing.T) {
	server := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected CORS origin header, got %q", origin)
	}
}
