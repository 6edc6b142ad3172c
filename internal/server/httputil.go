package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

const (
	codeBadRequest       = "BAD_REQUEST"
	codeUnknownFieldType = "UNKNOWN_FIELD_TYPE"
	codeUnknownLayout    = "UNKNOWN_LAYOUT"
	codeNotFound         = "NOT_FOUND"
	codeInternal         = "INTERNAL_ERROR"

	maxBodyBytes = 1 << 20
)

// writeJSON marshals v as JSON and writes it with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", slog.Any("error", err))
	}
}

// writeError writes a structured JSON error response.
func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// decodeJSON decodes the request body into v. An empty body leaves v as is.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}
