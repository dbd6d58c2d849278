package server

import (
	"encoding/json"
	"net/http"

	"github.com/nishanrajkantan/insta-saver/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	s.respondJSON(w, statusFor(err), errorResponse{Error: errors.Message(err)})
}

func statusFor(err error) int {
	switch {
	case errors.IsBadInput(err):
		return http.StatusBadRequest
	case errors.IsForbidden(err):
		return http.StatusForbidden
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsUnprocessable(err):
		return http.StatusUnprocessableEntity
	case errors.IsUpstream(err):
		return http.StatusBadGateway
	case errors.IsNotConfigured(err):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
