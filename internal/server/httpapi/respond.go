package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vkotlyar/homesense/internal/common"
)

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "error encoding response", "error", err.Error())
	}
}

// writeError maps sentinel errors to statuses. The bodies are canned so that
// internal detail never reaches the client; the real error goes to the log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorInvalidRequest):
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request"})
	case errors.Is(err, common.ErrorUnauthenticated):
		s.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthenticated"})
	case errors.Is(err, common.ErrorForbidden):
		s.writeJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
	case errors.Is(err, common.ErrorNotFound):
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, common.ErrorConflict):
		s.writeJSON(w, http.StatusConflict, errorBody{Error: "already exists"})
	case errors.Is(err, common.ErrorUpstreamTimeout):
		s.logger.Error(r.Context(), "upstream timeout", "path", r.URL.Path, "error", err.Error())
		s.writeJSON(w, http.StatusGatewayTimeout, errorBody{Error: "upstream timeout"})
	case errors.Is(err, common.ErrorUpstream):
		s.logger.Error(r.Context(), "upstream error", "path", r.URL.Path, "error", err.Error())
		s.writeJSON(w, http.StatusBadGateway, errorBody{Error: "upstream error"})
	default:
		s.logger.Error(r.Context(), "internal error", "path", r.URL.Path, "error", err.Error())
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
