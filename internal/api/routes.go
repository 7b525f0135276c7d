package api

import "net/http"

// registerRoutes registers the JSON endpoints on the mux
func (s *Server) registerRoutes() {
	s.router.HandleFunc("/api/health", s.handleHealth)
	s.router.HandleFunc("/api/info", s.handleInfo)
}

// route dispatches the JSON endpoints to the mux and everything else to
// the file pipeline. The pipeline sees the request path untouched:
// ServeMux would clean-and-redirect traversal paths, which must instead
// reach the resolver to be rejected as 400.
func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/health", "/api/info":
		s.router.ServeHTTP(w, r)
	default:
		s.handleStatic(w, r)
	}
}
