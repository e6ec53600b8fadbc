package httpapi

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	"github.com/vkotlyar/homesense/internal/common"
)

func (s *Server) handleDevicesPage(w http.ResponseWriter, r *http.Request, userID int64) {
	list, err := s.devices.List(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, devicesPageHeader)
	for _, d := range list {
		fmt.Fprintf(w, "<li>%s</li>\n", html.EscapeString(d.DeviceID))
	}
	fmt.Fprint(w, devicesPageFooter)
}

func (s *Server) handleRegisterDevice(w http.ResponseWriter, r *http.Request, userID int64) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	if err := s.devices.Register(r.Context(), userID, r.PostFormValue("mac_address")); err != nil {
		s.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/devices", http.StatusSeeOther)
}

type renameDeviceRequest struct {
	NewMACAddress string `json:"new_mac_address"`
}

func (s *Server) handleRenameDevice(w http.ResponseWriter, r *http.Request, userID int64) {
	var req renameDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	if err := s.devices.Rename(r.Context(), userID, r.PathValue("mac"), req.NewMACAddress); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnregisterDevice(w http.ResponseWriter, r *http.Request, userID int64) {
	if err := s.devices.Unregister(r.Context(), userID, r.PathValue("mac")); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
