package domain

import "time"

// ItemRequest is a user's public ask for an item not currently listed.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequesterID int64     `json:"requesterId"`
	Created     time.Time `json:"created"`
}

// ItemRequestExtended is a request together with the items listed in
// answer to it.
type ItemRequestExtended struct {
	ItemRequest
	Items []Item `json:"items"`
}
