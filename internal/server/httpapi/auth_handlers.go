package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vkotlyar/homesense/internal/common"
)

func (s *Server) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// handleSignup creates an account from the registration form and sends the
// new user to the login page.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	_, err := s.auth.Signup(r.Context(),
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		r.PostFormValue("password"),
		r.PostFormValue("pid"),
		r.PostFormValue("location"),
	)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "email already registered"})
			return
		}
		s.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, loginPage)
}

// handleLogin verifies credentials, opens a session, and sets the cookie.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	session, err := s.auth.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	http.SetCookie(w, s.sessionCookie(session.ID, int(s.sessionTTL.Seconds())))
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// handleLogout closes the session and clears the cookie. Logging out while
// already logged out is fine.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := s.auth.Logout(r.Context(), cookie.Value); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	http.SetCookie(w, s.sessionCookie("", -1))
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, userID int64) {
	user, err := s.auth.UserInfo(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, dashboardPage, user.Name, user.Location)
}

type userInfoResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PID      string `json:"pid"`
	Location string `json:"location"`
}

func (s *Server) handleUserInfo(w http.ResponseWriter, r *http.Request, userID int64) {
	user, err := s.auth.UserInfo(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, userInfoResponse{
		Name:     user.Name,
		Email:    user.Email,
		PID:      user.PID,
		Location: user.Location,
	})
}
