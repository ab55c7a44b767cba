package http

import (
	"encoding/json"
	"net/http"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/service"
)

type ItemRequestHandler struct {
	requestSvc service.ItemRequestService
}

func NewItemRequestHandler(requestSvc service.ItemRequestService) *ItemRequestHandler {
	return &ItemRequestHandler{requestSvc: requestSvc}
}

type createItemRequestRequest struct {
	Description string `json:"description"`
}

func (h *ItemRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	requesterID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var req createItemRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	request, err := h.requestSvc.Add(r.Context(), requesterID, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *ItemRequestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	callerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	requestID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	request, err := h.requestSvc.GetByID(r.Context(), callerID, requestID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *ItemRequestHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	callerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	requests, err := h.requestSvc.ListOwn(r.Context(), callerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if requests == nil {
		requests = []domain.ItemRequestExtended{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ItemRequestHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	callerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	from, size, err := pagination(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	requests, err := h.requestSvc.ListAll(r.Context(), callerID, from, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if requests == nil {
		requests = []domain.ItemRequestExtended{}
	}
	writeJSON(w, http.StatusOK, requests)
}
