package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	ItemID int64     `json:"itemId"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	bookerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	booking, err := h.bookingSvc.Create(r.Context(), bookerID, req.ItemID, req.Start, req.End)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) SetApproval(w http.ResponseWriter, r *http.Request) {
	actorID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	bookingID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		writeBadRequest(w, "invalid approved parameter")
		return
	}
	booking, err := h.bookingSvc.SetApproval(r.Context(), actorID, bookingID, approved)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	viewerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	bookingID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	booking, err := h.bookingSvc.GetByID(r.Context(), viewerID, bookingID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListByBooker(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.bookingSvc.ListByBooker)
}

func (h *BookingHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.bookingSvc.ListByOwner)
}

func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request,
	listFn func(ctx context.Context, userID int64, state string, from, size int) ([]domain.BookingDetail, error)) {
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
	state := r.URL.Query().Get("state")
	if state == "" {
		state = string(domain.BookingStateAll)
	}
	bookings, err := listFn(r.Context(), callerID, state, from, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if bookings == nil {
		bookings = []domain.BookingDetail{}
	}
	writeJSON(w, http.StatusOK, bookings)
}
