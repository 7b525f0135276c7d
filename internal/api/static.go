package api

import (
	"errors"
	"net/http"

	serrors "staticd/internal/errors"
)

// handleStatic resolves the request through the file pipeline and
// forwards its decision to the client. The raw request URI is passed
// through so the pipeline sees the query string and percent-encoding
// exactly as sent.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	resp := s.pipeline.Build(r.RequestURI, r.Header)

	if err := resp.Send(w); err != nil {
		fields := map[string]interface{}{
			"path":      r.URL.Path,
			"error":     err.Error(),
			"requestID": GetRequestID(r.Context()),
		}

		var serr *serrors.ServeError
		if errors.As(err, &serr) && serr.Code == serrors.StreamFailure {
			// Headers were already committed; the stream was aborted.
			s.logger.Error("Stream aborted", fields)
			return
		}
		s.logger.Error("Failed to send response", fields)
	}
}
