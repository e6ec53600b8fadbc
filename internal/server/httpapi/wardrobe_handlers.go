package httpapi

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/server/models"
)

type wardrobeItemResponse struct {
	ID       int64  `json:"id"`
	ItemName string `json:"item_name"`
	ItemType string `json:"item_type"`
}

type wardrobeListResponse struct {
	Data []wardrobeItemResponse `json:"data"`
}

type wardrobeItemRequest struct {
	ItemName string `json:"item_name"`
	ItemType string `json:"item_type"`
}

func toWardrobeResponse(m models.WardrobeItem) wardrobeItemResponse {
	return wardrobeItemResponse{ID: m.ID, ItemName: m.ItemName, ItemType: m.ItemType}
}

func (s *Server) handleWardrobePage(w http.ResponseWriter, r *http.Request, userID int64) {
	list, err := s.wardrobe.List(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, wardrobePageHeader)
	for _, m := range list {
		fmt.Fprintf(w, "<li>%s (%s)</li>\n", html.EscapeString(m.ItemName), html.EscapeString(m.ItemType))
	}
	fmt.Fprint(w, wardrobePageFooter)
}

func (s *Server) handleListWardrobe(w http.ResponseWriter, r *http.Request, userID int64) {
	list, err := s.wardrobe.List(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := wardrobeListResponse{Data: make([]wardrobeItemResponse, 0, len(list))}
	for _, m := range list {
		resp.Data = append(resp.Data, toWardrobeResponse(m))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddWardrobe(w http.ResponseWriter, r *http.Request, userID int64) {
	var req wardrobeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	item, err := s.wardrobe.Add(r.Context(), userID, req.ItemName, req.ItemType)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, toWardrobeResponse(*item))
}

func (s *Server) handleUpdateWardrobe(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req wardrobeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrorInvalidRequest)
		return
	}

	if err := s.wardrobe.Update(r.Context(), userID, id, req.ItemName, req.ItemType); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteWardrobe(w http.ResponseWriter, r *http.Request, userID int64) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.wardrobe.Remove(r.Context(), userID, id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
