package static

import (
	"net/url"
	"path/filepath"
	"strings"

	serrors "staticd/internal/errors"
)

// Resolver maps raw request paths to absolute filesystem paths confined
// to a root directory.
//
// The confinement check is a lexical prefix comparison after
// normalization. It does not resolve symlinks, so a symlink inside the
// root that points outside it can still escape. This is a known
// limitation, not a guarantee.
type Resolver struct {
	root      string
	indexFile string
}

// NewResolver creates a resolver rooted at dir. dir is made absolute so
// the prefix check below compares like with like.
func NewResolver(dir, indexFile string) (*Resolver, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, serrors.New(serrors.InternalError, "cannot resolve content root", err)
	}
	return &Resolver{root: abs, indexFile: indexFile}, nil
}

// Root returns the absolute content root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve turns a raw request path into an absolute path under the root,
// or rejects it with an INVALID_PATH error. The raw path may still carry
// its query string, fragment, and percent-encoding.
func (r *Resolver) Resolve(requestPath string) (string, error) {
	p := requestPath

	// Everything from the first ? or # onward is not part of the file path.
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	decoded, err := url.PathUnescape(p)
	if err != nil {
		return "", serrors.New(serrors.InvalidPath, "malformed request path", err)
	}
	p = decoded

	if p == "/" {
		p = "/" + r.indexFile
	}

	// Treat the path as relative to the root: leading separators
	// (including the backslash form) must not re-anchor it.
	p = strings.TrimLeft(p, "/\\")

	// Join cleans lexically, so any surviving ".." segments walk the
	// candidate out of the root and fail the prefix check.
	candidate := filepath.Join(r.root, filepath.FromSlash(p))

	if candidate != r.root && !strings.HasPrefix(candidate, r.root+string(filepath.Separator)) {
		return "", serrors.New(serrors.InvalidPath, "request path escapes content root", nil)
	}

	return candidate, nil
}
