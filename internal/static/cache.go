package static

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
)

// Validator is the cache validator pair derived from file metadata.
// Identical metadata always yields an identical Validator.
type Validator struct {
	ETag         string
	LastModified string
}

// BuildValidator derives a weak ETag and a Last-Modified string from
// file metadata. SHA-1 is used as a fast digest for a cache key, not as
// a security token.
func BuildValidator(meta FileMetadata) Validator {
	seed := fmt.Sprintf("%d-%d-%d", meta.ID, meta.Size, meta.ModTime.UnixNano())
	sum := sha1.Sum([]byte(seed))
	return Validator{
		ETag:         `W/"` + hex.EncodeToString(sum[:]) + `"`,
		LastModified: meta.ModTime.UTC().Format(http.TimeFormat),
	}
}

// IsFresh reports whether the client's cached copy satisfies the
// request, making a conditional 304 possible.
//
// If-Modified-Since is compared by exact string equality, not by parsing
// the date. A client sending a semantically equal but reformatted date
// will not get a cache hit. That mirrors the upstream behavior and is
// kept intentionally.
func (v Validator) IsFresh(reqHeader http.Header) bool {
	if inm := reqHeader.Get("If-None-Match"); inm != "" && inm == v.ETag {
		return true
	}
	if ims := reqHeader.Get("If-Modified-Since"); ims != "" && ims == v.LastModified {
		return true
	}
	return false
}
