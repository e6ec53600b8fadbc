package httpapi

import (
	"net/http"

	"github.com/vkotlyar/homesense/internal/common"
)

type aiResponse struct {
	Response string `json:"response"`
}

// handleAIResponse forwards the posted prompt to the completion API on behalf
// of the authenticated user. A slow upstream surfaces as 504.
func (s *Server) handleAIResponse(w http.ResponseWriter, r *http.Request, userID int64) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}
	prompt := r.PostFormValue("prompt")
	if prompt == "" {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	user, err := s.auth.UserInfo(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.ai.Complete(r.Context(), user.Email, user.PID, prompt)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, aiResponse{Response: out})
}
