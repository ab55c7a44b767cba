package http

import (
	"encoding/json"
	"net/http"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/service"
)

type ItemHandler struct {
	itemSvc service.ItemService
}

func NewItemHandler(itemSvc service.ItemService) *ItemHandler {
	return &ItemHandler{itemSvc: itemSvc}
}

type createItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type commentRequest struct {
	Text string `json:"text"`
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	item := domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	}
	if err := h.itemSvc.Add(r.Context(), ownerID, &item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	itemID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var patch domain.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	item, err := h.itemSvc.Update(r.Context(), actorID, itemID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := h.itemSvc.Delete(r.Context(), itemID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	viewerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	itemID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	item, err := h.itemSvc.GetByID(r.Context(), viewerID, itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	from, size, err := pagination(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	items, err := h.itemSvc.ListByOwner(r.Context(), ownerID, from, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.ItemExtended{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	if _, err := userID(r); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	from, size, err := pagination(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	items, err := h.itemSvc.Search(r.Context(), r.URL.Query().Get("text"), from, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	authorID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	itemID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	comment, err := h.itemSvc.AddComment(r.Context(), authorID, itemID, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}
