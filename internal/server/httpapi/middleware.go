package httpapi

import (
	"errors"
	"net/http"

	"github.com/vkotlyar/homesense/internal/common"
)

// authenticate resolves the session cookie to a user id. A missing cookie is
// an ordinary unauthenticated request, not an error condition.
func (s *Server) authenticate(r *http.Request) (int64, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return 0, common.ErrorUnauthenticated
	}
	return s.auth.Authenticate(r.Context(), cookie.Value)
}

// api guards a JSON endpoint. Unauthenticated requests get a 401 body;
// anything else that fails during session resolution is a server fault.
func (s *Server) api(next func(w http.ResponseWriter, r *http.Request, userID int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.authenticate(r)
		if err != nil {
			if errors.Is(err, common.ErrorUnauthenticated) {
				s.writeError(w, r, common.ErrorUnauthenticated)
				return
			}
			s.writeError(w, r, err)
			return
		}
		next(w, r, userID)
	}
}

// page guards a browser-facing endpoint. Unauthenticated visitors are sent
// to the login form instead of getting a JSON body.
func (s *Server) page(next func(w http.ResponseWriter, r *http.Request, userID int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.authenticate(r)
		if err != nil {
			if errors.Is(err, common.ErrorUnauthenticated) {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			s.writeError(w, r, err)
			return
		}
		next(w, r, userID)
	}
}
