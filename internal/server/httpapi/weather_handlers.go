package httpapi

import (
	"net/http"

	"github.com/vkotlyar/homesense/internal/common"
)

type weatherResponse struct {
	Location    string  `json:"location"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
	Unit        string  `json:"unit"`
}

// handleWeather looks up current conditions for the posted city. The lookup
// chains two public APIs, so failures surface as 502 rather than 500.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	report, err := s.weather.Current(r.Context(), r.PostFormValue("city"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, weatherResponse{
		Location:    report.Location,
		Condition:   report.Condition,
		Temperature: report.Temperature,
		Unit:        report.Unit,
	})
}
