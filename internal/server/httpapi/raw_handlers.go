package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/server/models"
)

type rawTempRequest struct {
	Value      *float64 `json:"value"`
	Unit       string   `json:"unit"`
	MACAddress string   `json:"mac_address"`
}

type rawTempResponse struct {
	ID         int64   `json:"id"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	MACAddress string  `json:"mac_address"`
}

type rawTempListResponse struct {
	Data []rawTempResponse `json:"data"`
}

// handleAddRawTemp is the unauthenticated ingest endpoint fed by the MQTT
// bridge. Samples land in their own table, away from user-owned data.
func (s *Server) handleAddRawTemp(w http.ResponseWriter, r *http.Request) {
	var req rawTempRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}
	if req.Value == nil || req.Unit == "" {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	id, err := s.readings.InsertRaw(r.Context(), &models.RawTemperature{
		Value:      *req.Value,
		Unit:       req.Unit,
		MACAddress: req.MACAddress,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, insertReadingResponse{ID: id})
}

func (s *Server) handleGetRawTemp(w http.ResponseWriter, r *http.Request) {
	list, err := s.readings.RawByMAC(r.Context(), r.PathValue("mac"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := rawTempListResponse{Data: make([]rawTempResponse, 0, len(list))}
	for _, m := range list {
		resp.Data = append(resp.Data, rawTempResponse{
			ID:         m.ID,
			Value:      m.Value,
			Unit:       m.Unit,
			MACAddress: m.MACAddress,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}
