package httpapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/server/models"
	"github.com/vkotlyar/homesense/internal/server/repositories/readings"
)

type readingResponse struct {
	ID        int64   `json:"id"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Timestamp string  `json:"timestamp"`
	DeviceID  string  `json:"device_id"`
}

func toReadingResponse(m models.Reading) readingResponse {
	return readingResponse{
		ID:        m.ID,
		Value:     m.Value,
		Unit:      m.Unit,
		Timestamp: m.Timestamp.Format(models.TimestampLayout),
		DeviceID:  m.DeviceID,
	}
}

type readingListResponse struct {
	Data []readingResponse `json:"data"`
}

// pathKind resolves the {kind} segment. Unknown kinds read as a missing
// resource, same as an unknown URL.
func pathKind(r *http.Request) (models.SensorKind, error) {
	return models.ParseSensorKind(r.PathValue("kind"))
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, common.ErrorInvalidRequest
	}
	return id, nil
}

// queryValue returns the hyphenated parameter, falling back to the
// underscore spelling some clients send.
func queryValue(q url.Values, name, alt string) string {
	if v := q.Get(name); v != "" {
		return v
	}
	return q.Get(alt)
}

// parseFilter builds a ListFilter from query parameters. Bad timestamps are
// rejected; an unrecognized order-by column is silently ignored.
func parseFilter(r *http.Request) (readings.ListFilter, error) {
	var filter readings.ListFilter
	q := r.URL.Query()

	if v := queryValue(q, "start-date", "start_date"); v != "" {
		t, err := time.ParseInLocation(models.TimestampLayout, v, time.Local)
		if err != nil {
			return filter, common.ErrorInvalidRequest
		}
		filter.Start = &t
	}
	if v := queryValue(q, "end-date", "end_date"); v != "" {
		t, err := time.ParseInLocation(models.TimestampLayout, v, time.Local)
		if err != nil {
			return filter, common.ErrorInvalidRequest
		}
		filter.End = &t
	}
	filter.OrderBy = queryValue(q, "order-by", "order_by")

	return filter, nil
}

func (s *Server) handleListReadings(w http.ResponseWriter, r *http.Request, userID int64) {
	kind, err := pathKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	list, err := s.readings.Query(r.Context(), userID, kind, filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := readingListResponse{Data: make([]readingResponse, 0, len(list))}
	for _, m := range list {
		resp.Data = append(resp.Data, toReadingResponse(m))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

type insertReadingRequest struct {
	Value     *float64 `json:"value"`
	Unit      string   `json:"unit"`
	Timestamp string   `json:"timestamp"`
	DeviceID  string   `json:"device_id"`
}

type insertReadingResponse struct {
	ID int64 `json:"id"`
}

func (s *Server) handleInsertReading(w http.ResponseWriter, r *http.Request, userID int64) {
	kind, err := pathKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req insertReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}
	if req.Value == nil || req.Unit == "" || req.DeviceID == "" {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	reading := &models.Reading{
		Value:    *req.Value,
		Unit:     req.Unit,
		DeviceID: req.DeviceID,
	}
	if req.Timestamp != "" {
		t, err := time.ParseInLocation(models.TimestampLayout, req.Timestamp, time.Local)
		if err != nil {
			s.writeError(w, r, common.ErrorInvalidRequest)
			return
		}
		reading.Timestamp = t
	}

	id, err := s.readings.Insert(r.Context(), userID, kind, reading)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, insertReadingResponse{ID: id})
}

func (s *Server) handleCountReadings(w http.ResponseWriter, r *http.Request, userID int64) {
	kind, err := pathKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	n, err := s.readings.Count(r.Context(), userID, kind)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleGetReading(w http.ResponseWriter, r *http.Request, userID int64) {
	kind, err := pathKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	m, err := s.readings.Get(r.Context(), userID, kind, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toReadingResponse(*m))
}

type updateReadingRequest struct {
	Value     *float64 `json:"value"`
	Unit      *string  `json:"unit"`
	Timestamp *string  `json:"timestamp"`
	DeviceID  string   `json:"device_id"`
}

func (s *Server) handleUpdateReading(w http.ResponseWriter, r *http.Request, userID int64) {
	kind, err := pathKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req updateReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}
	if req.DeviceID == "" {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	fields := readings.UpdateFields{Value: req.Value, Unit: req.Unit}
	if req.Timestamp != nil {
		t, err := time.ParseInLocation(models.TimestampLayout, *req.Timestamp, time.Local)
		if err != nil {
			s.writeError(w, r, common.ErrorInvalidRequest)
			return
		}
		fields.Timestamp = &t
	}

	if err := s.readings.Update(r.Context(), userID, kind, id, req.DeviceID, fields); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteReading(w http.ResponseWriter, r *http.Request, userID int64) {
	kind, err := pathKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.readings.Delete(r.Context(), userID, kind, id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
