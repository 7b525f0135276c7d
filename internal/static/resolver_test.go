package static

import (
	"path/filepath"
	"strings"
	"testing"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	r, err := NewResolver(t.TempDir(), "index.html")
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	return r
}

func TestResolve_PlainPath(t *testing.T) {
	r := newTestResolver(t)

	got, err := r.Resolve("/css/app.css")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := filepath.Join(r.Root(), "css", "app.css")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestResolve_StripsQueryAndFragment(t *testing.T) {
	r := newTestResolver(t)

	cases := []struct {
		path string
		want string
	}{
		{"/app.js?v=123", "app.js"},
		{"/app.js#main", "app.js"},
		{"/app.js?v=1#main", "app.js"},
	}

	for _, tc := range cases {
		got, err := r.Resolve(tc.path)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tc.path, err)
			continue
		}
		want := filepath.Join(r.Root(), tc.want)
		if got != want {
			t.Errorf("Resolve(%q): expected %q, got %q", tc.path, want, got)
		}
	}
}

func TestResolve_RootSubstitutesIndex(t *testing.T) {
	r := newTestResolver(t)

	got, err := r.Resolve("/")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := filepath.Join(r.Root(), "index.html")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestResolve_EmptyPathResolvesToRoot(t *testing.T) {
	r := newTestResolver(t)

	got, err := r.Resolve("//")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got != r.Root() {
		t.Errorf("expected root %q, got %q", r.Root(), got)
	}
}

func TestResolve_RejectsTraversal(t *testing.T) {
	r := newTestResolver(t)

	cases := []string{
		"/../../etc/passwd",
		"/..",
		"/../",
		"/static/../../outside",
		"/..%2f..%2fetc/passwd",
		"/%2e%2e/%2e%2e/etc/passwd",
	}

	for _, path := range cases {
		got, err := r.Resolve(path)
		if err == nil {
			t.Errorf("Resolve(%q): expected rejection, got %q", path, got)
		}
	}
}

func TestResolve_RejectsMalformedEscape(t *testing.T) {
	r := newTestResolver(t)

	if _, err := r.Resolve("/%zz"); err == nil {
		t.Error("expected rejection for malformed percent-encoding")
	}
}

func TestResolve_NormalizesDotSegments(t *testing.T) {
	r := newTestResolver(t)

	got, err := r.Resolve("/a/./b//c.txt")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := filepath.Join(r.Root(), "a", "b", "c.txt")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestResolve_InternalDotDotStaysInside(t *testing.T) {
	r := newTestResolver(t)

	// The .. collapses against /static without leaving the root
	got, err := r.Resolve("/static/../app.js")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := filepath.Join(r.Root(), "app.js")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if !strings.HasPrefix(got, r.Root()) {
		t.Errorf("resolved path %q escapes root %q", got, r.Root())
	}
}
