package static

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
)

// Encoding is the closed set of response compression choices. It is
// selected at most once per request and immutable for the response
// duration.
type Encoding int

const (
	// EncodingNone streams the raw bytes
	EncodingNone Encoding = iota
	// EncodingGzip compresses with gzip
	EncodingGzip
	// EncodingDeflate compresses with raw deflate
	EncodingDeflate
	// EncodingBrotli compresses with brotli
	EncodingBrotli
)

// Token returns the Content-Encoding header token for the encoding.
func (e Encoding) Token() string {
	switch e {
	case EncodingGzip:
		return "gzip"
	case EncodingDeflate:
		return "deflate"
	case EncodingBrotli:
		return "br"
	}
	return ""
}

// SelectEncoding picks a compression algorithm from the client's
// Accept-Encoding header, preferring br over gzip over deflate.
//
// This is a substring containment check, not a q-value parse; weighted
// or partial negotiation is not modeled.
func SelectEncoding(acceptEncoding string) Encoding {
	switch {
	case acceptEncoding == "":
		return EncodingNone
	case strings.Contains(acceptEncoding, "br"):
		return EncodingBrotli
	case strings.Contains(acceptEncoding, "gzip"):
		return EncodingGzip
	case strings.Contains(acceptEncoding, "deflate"):
		return EncodingDeflate
	}
	return EncodingNone
}

// NewWriter wraps w with the encoding's compressor. The caller owns the
// returned writer and must Close it to flush trailing bytes.
func (e Encoding) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch e {
	case EncodingGzip:
		return gzip.NewWriter(w), nil
	case EncodingDeflate:
		return flate.NewWriter(w, flate.DefaultCompression)
	case EncodingBrotli:
		return brotli.NewWriter(w), nil
	}
	return nil, fmt.Errorf("encoding %d has no compressor", e)
}
