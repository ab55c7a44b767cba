package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID       int64         `json:"id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	ItemID   int64         `json:"itemId"`
	BookerID int64         `json:"bookerId"`
	Status   BookingStatus `json:"status"`
}

// BookingDetail is a booking with its item and booker resolved, the shape
// returned by the bookings API.
type BookingDetail struct {
	ID     int64         `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`
	Item   Item          `json:"item"`
	Booker User          `json:"booker"`
}

// BookingRef is the compact booking shape embedded in extended item views.
type BookingRef struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// BookingState is a logical filter over a user's bookings.
type BookingState string

const (
	BookingStateAll      BookingState = "ALL"
	BookingStateCurrent  BookingState = "CURRENT"
	BookingStatePast     BookingState = "PAST"
	BookingStateFuture   BookingState = "FUTURE"
	BookingStateWaiting  BookingState = "WAITING"
	BookingStateRejected BookingState = "REJECTED"
)

// ParseBookingState maps a state query keyword to a BookingState.
// An unrecognized keyword yields a StateError.
func ParseBookingState(s string) (BookingState, error) {
	switch BookingState(s) {
	case BookingStateAll, BookingStateCurrent, BookingStatePast,
		BookingStateFuture, BookingStateWaiting, BookingStateRejected:
		return BookingState(s), nil
	default:
		return "", &StateError{Message: fmt.Sprintf("Unknown state: %s", s)}
	}
}
