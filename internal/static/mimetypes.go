package static

import (
	"path/filepath"
	"strings"
)

// DefaultContentType is returned for unknown or absent extensions.
const DefaultContentType = "application/octet-stream"

// contentTypes maps lowercase file extensions to MIME types. Immutable
// after init, safe for unsynchronized concurrent reads.
var contentTypes = map[string]string{
	".html":        "text/html",
	".htm":         "text/html",
	".css":         "text/css",
	".js":          "application/javascript",
	".mjs":         "application/javascript",
	".json":        "application/json",
	".svg":         "image/svg+xml",
	".png":         "image/png",
	".jpg":         "image/jpeg",
	".jpeg":        "image/jpeg",
	".gif":         "image/gif",
	".ico":         "image/x-icon",
	".webp":        "image/webp",
	".txt":         "text/plain",
	".xml":         "application/xml",
	".pdf":         "application/pdf",
	".woff":        "font/woff",
	".woff2":       "font/woff2",
	".wasm":        "application/wasm",
	".webmanifest": "application/manifest+json",
}

// ContentTypeFor returns the MIME type for a file path based on its
// extension, case-insensitively.
func ContentTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return DefaultContentType
}
