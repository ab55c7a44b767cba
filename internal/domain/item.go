package domain

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	// RequestID links the item to the item request it was listed in answer to.
	RequestID *int64 `json:"requestId,omitempty"`
}

// ItemPatch carries a partial item update; nil fields are left unchanged.
type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// ItemExtended is an item enriched with its most recent past and nearest
// future approved bookings plus all comments. LastBooking and NextBooking
// are populated only when the viewer owns the item.
type ItemExtended struct {
	Item
	LastBooking *BookingRef `json:"lastBooking"`
	NextBooking *BookingRef `json:"nextBooking"`
	Comments    []Comment   `json:"comments"`
}
