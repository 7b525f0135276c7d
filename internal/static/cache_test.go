package static

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func testMeta() FileMetadata {
	return FileMetadata{
		Size:    2048,
		ModTime: time.Date(2024, 3, 15, 10, 30, 0, 123456789, time.UTC),
		ID:      42,
	}
}

func TestBuildValidator_Deterministic(t *testing.T) {
	a := BuildValidator(testMeta())
	b := BuildValidator(testMeta())

	if a.ETag != b.ETag {
		t.Errorf("identical metadata produced different ETags: %q vs %q", a.ETag, b.ETag)
	}
	if a.LastModified != b.LastModified {
		t.Errorf("identical metadata produced different Last-Modified: %q vs %q", a.LastModified, b.LastModified)
	}
}

func TestBuildValidator_WeakETag(t *testing.T) {
	v := BuildValidator(testMeta())

	if !strings.HasPrefix(v.ETag, `W/"`) || !strings.HasSuffix(v.ETag, `"`) {
		t.Errorf("expected weak validator form W/\"...\", got %q", v.ETag)
	}

	// 160-bit digest is 40 hex characters
	hexPart := strings.TrimSuffix(strings.TrimPrefix(v.ETag, `W/"`), `"`)
	if len(hexPart) != 40 {
		t.Errorf("expected 40 hex chars, got %d in %q", len(hexPart), v.ETag)
	}
}

func TestBuildValidator_ChangesWithMetadata(t *testing.T) {
	base := BuildValidator(testMeta())

	bigger := testMeta()
	bigger.Size++
	if BuildValidator(bigger).ETag == base.ETag {
		t.Error("size change did not change ETag")
	}

	newer := testMeta()
	newer.ModTime = newer.ModTime.Add(time.Millisecond)
	if BuildValidator(newer).ETag == base.ETag {
		t.Error("sub-second mtime change did not change ETag")
	}

	other := testMeta()
	other.ID++
	if BuildValidator(other).ETag == base.ETag {
		t.Error("file id change did not change ETag")
	}
}

func TestBuildValidator_LastModifiedFormat(t *testing.T) {
	v := BuildValidator(testMeta())

	if _, err := time.Parse(http.TimeFormat, v.LastModified); err != nil {
		t.Errorf("Last-Modified %q is not in HTTP date format: %v", v.LastModified, err)
	}
	if !strings.HasSuffix(v.LastModified, "GMT") {
		t.Errorf("expected GMT suffix, got %q", v.LastModified)
	}
}

func TestIsFresh_ETagMatch(t *testing.T) {
	v := BuildValidator(testMeta())

	h := http.Header{}
	h.Set("If-None-Match", v.ETag)
	if !v.IsFresh(h) {
		t.Error("expected fresh for matching If-None-Match")
	}

	h.Set("If-None-Match", `W/"deadbeef"`)
	if v.IsFresh(h) {
		t.Error("expected stale for non-matching If-None-Match")
	}
}

func TestIsFresh_LastModifiedExactStringMatch(t *testing.T) {
	v := BuildValidator(testMeta())

	h := http.Header{}
	h.Set("If-Modified-Since", v.LastModified)
	if !v.IsFresh(h) {
		t.Error("expected fresh for byte-identical If-Modified-Since")
	}

	// A semantically equal but reformatted date misses: the comparison
	// is string equality, not a timestamp comparison.
	parsed, err := time.Parse(http.TimeFormat, v.LastModified)
	if err != nil {
		t.Fatalf("failed to parse Last-Modified: %v", err)
	}
	h.Set("If-Modified-Since", parsed.Format(time.RFC1123))
	if v.LastModified != parsed.Format(time.RFC1123) && v.IsFresh(h) {
		t.Error("expected stale for reformatted If-Modified-Since")
	}
}

func TestIsFresh_NoConditionalHeaders(t *testing.T) {
	v := BuildValidator(testMeta())

	if v.IsFresh(http.Header{}) {
		t.Error("expected stale with no conditional headers")
	}
}
