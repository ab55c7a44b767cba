package gateway

import "time"

// Request shapes the gateway validates before forwarding. The server trusts
// forwarded requests, so everything rejected here never reaches it.

type bookItemRequest struct {
	ItemID int64      `json:"itemId" validate:"required,gt=0"`
	Start  *time.Time `json:"start" validate:"required"`
	End    *time.Time `json:"end" validate:"required"`
}

type createItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

type updateItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Available   *bool   `json:"available"`
}

type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type updateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type createCommentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

type createRequestRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
}
