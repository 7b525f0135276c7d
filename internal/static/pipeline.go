package static

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	serrors "staticd/internal/errors"
	"staticd/internal/logging"
)

const plainTextType = "text/plain; charset=utf-8"

// Pipeline orchestrates resolution, stat, cache negotiation, and
// response construction. One Build call per request; Pipeline itself
// holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	resolver     *Resolver
	indexFile    string
	notFoundFile string
	assetMaxAge  int
	logger       *logging.Logger
}

// Options configures a Pipeline.
type Options struct {
	Root         string
	IndexFile    string
	NotFoundFile string
	// AssetMaxAgeSeconds is the Cache-Control max-age for non-HTML
	// responses. HTML always gets no-cache: it is the mutable entry
	// point, while assets are assumed rarely changing.
	AssetMaxAgeSeconds int
	Logger             *logging.Logger
}

// NewPipeline creates a pipeline serving files under opts.Root.
func NewPipeline(opts Options) (*Pipeline, error) {
	if opts.IndexFile == "" {
		opts.IndexFile = "index.html"
	}
	if opts.NotFoundFile == "" {
		opts.NotFoundFile = "404.html"
	}
	if opts.AssetMaxAgeSeconds <= 0 {
		opts.AssetMaxAgeSeconds = 3600
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(logging.Config{Format: logging.HumanFormat, Level: logging.ErrorLevel})
	}

	resolver, err := NewResolver(opts.Root, opts.IndexFile)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		resolver:     resolver,
		indexFile:    opts.IndexFile,
		notFoundFile: opts.NotFoundFile,
		assetMaxAge:  opts.AssetMaxAgeSeconds,
		logger:       opts.Logger,
	}, nil
}

// Response is the pipeline's decision for one request: a status code, a
// header set, and a body that is either empty, a fixed buffer, or a
// lazily opened stream. The stream is finite, single-consumption, and
// not restartable.
type Response struct {
	Status   int
	Header   http.Header
	Body     []byte
	Open     func() (io.ReadCloser, error)
	Encoding Encoding
}

// Build runs the pipeline for a raw request path and the request
// headers. Every outcome is a Response; failures are classified into
// terminal error responses rather than returned as errors.
func (p *Pipeline) Build(rawPath string, reqHeader http.Header) *Response {
	target, err := p.resolver.Resolve(rawPath)
	if err != nil {
		p.logger.Warn("rejected request path", map[string]interface{}{
			"path":  rawPath,
			"error": err.Error(),
		})
		return textResponse(http.StatusBadRequest, "Bad request")
	}

	meta, err := Stat(target)
	if err == nil && meta.IsDir {
		// One level of directory-to-index substitution; an index that is
		// itself a directory falls through to the 404 path.
		target = filepath.Join(target, p.indexFile)
		meta, err = Stat(target)
		if err == nil && meta.IsDir {
			err = fmt.Errorf("index %q is a directory", target)
		}
	}
	if err != nil {
		p.logger.Debug("stat failed", map[string]interface{}{
			"path":  rawPath,
			"error": err.Error(),
		})
		return p.notFound()
	}

	validator := BuildValidator(meta)
	if validator.IsFresh(reqHeader) {
		return &Response{Status: http.StatusNotModified, Header: http.Header{}}
	}

	ctype := ContentTypeFor(target)
	header := http.Header{}
	header.Set("Content-Type", ctype)
	header.Set("ETag", validator.ETag)
	header.Set("Last-Modified", validator.LastModified)
	header.Set("Vary", "Accept-Encoding")
	if strings.HasPrefix(ctype, "text/html") {
		header.Set("Cache-Control", "no-cache")
	} else {
		header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, immutable", p.assetMaxAge))
	}

	encoding := SelectEncoding(reqHeader.Get("Accept-Encoding"))
	if encoding == EncodingNone {
		header.Set("Content-Length", strconv.FormatInt(meta.Size, 10))
	} else {
		// Compressed size is unknown ahead of time; no Content-Length.
		header.Set("Content-Encoding", encoding.Token())
	}

	return &Response{
		Status:   http.StatusOK,
		Header:   header,
		Open:     func() (io.ReadCloser, error) { return os.Open(target) },
		Encoding: encoding,
	}
}

// notFound builds the terminal 404 response, preferring the custom 404
// page under the root when it is readable.
func (p *Pipeline) notFound() *Response {
	page := filepath.Join(p.resolver.Root(), p.notFoundFile)
	if body, err := os.ReadFile(page); err == nil {
		header := http.Header{}
		header.Set("Content-Type", "text/html")
		return &Response{Status: http.StatusNotFound, Header: header, Body: body}
	}
	return textResponse(http.StatusNotFound, "404 Not Found")
}

// textResponse builds a plain-text terminal response. Error responses
// never carry cache-validator headers.
func textResponse(status int, message string) *Response {
	header := http.Header{}
	header.Set("Content-Type", plainTextType)
	return &Response{Status: status, Header: header, Body: []byte(message)}
}

// Send writes the response to w. File bodies are opened lazily and
// streamed, optionally through the selected compressor; nothing buffers
// the whole file. The source and compressor are released on every exit
// path. A client disconnect surfaces as a copy error and aborts the
// stream.
func (r *Response) Send(w http.ResponseWriter) error {
	if r.Open == nil {
		return r.sendFixed(w)
	}

	src, err := r.Open()
	if err != nil {
		// Headers are not committed yet; fall back to a plain 500.
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return serrors.New(serrors.InternalError, "failed to open response body", err)
	}
	defer func() { _ = src.Close() }()

	copyHeaders(w.Header(), r.Header)
	w.WriteHeader(r.Status)

	var dst io.Writer = w
	if r.Encoding != EncodingNone {
		cw, err := r.Encoding.NewWriter(w)
		if err != nil {
			return serrors.New(serrors.StreamFailure, "failed to create compressor", err)
		}
		defer func() { _ = cw.Close() }()
		dst = cw
	}

	if _, err := io.Copy(dst, src); err != nil {
		// Headers are already on the wire; all we can do is abort.
		return serrors.New(serrors.StreamFailure, "response stream aborted", err)
	}
	return nil
}

func (r *Response) sendFixed(w http.ResponseWriter) error {
	copyHeaders(w.Header(), r.Header)
	if len(r.Body) > 0 {
		w.Header().Set("Content-Length", strconv.Itoa(len(r.Body)))
	}
	w.WriteHeader(r.Status)
	if len(r.Body) > 0 {
		if _, err := w.Write(r.Body); err != nil {
			return serrors.New(serrors.StreamFailure, "failed to write response body", err)
		}
	}
	return nil
}

func copyHeaders(dst, src http.Header) {
	for k, vv := range src {
		dst[k] = vv
	}
}
