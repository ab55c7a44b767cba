package service

import (
	"context"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
)

type UserService interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type ItemService interface {
	Add(ctx context.Context, ownerID int64, item *domain.Item) error
	Update(ctx context.Context, userID, itemID int64, patch domain.ItemPatch) (*domain.Item, error)
	Delete(ctx context.Context, itemID int64) error
	GetByID(ctx context.Context, viewerID, itemID int64) (*domain.ItemExtended, error)
	ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]domain.ItemExtended, error)
	Search(ctx context.Context, text string, from, size int) ([]domain.Item, error)
	AddComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error)
}

type BookingService interface {
	Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.BookingDetail, error)
	SetApproval(ctx context.Context, userID, bookingID int64, approved bool) (*domain.BookingDetail, error)
	GetByID(ctx context.Context, viewerID, bookingID int64) (*domain.BookingDetail, error)
	ListByBooker(ctx context.Context, userID int64, state string, from, size int) ([]domain.BookingDetail, error)
	ListByOwner(ctx context.Context, userID int64, state string, from, size int) ([]domain.BookingDetail, error)
}

type ItemRequestService interface {
	Add(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error)
	GetByID(ctx context.Context, userID, requestID int64) (*domain.ItemRequestExtended, error)
	ListOwn(ctx context.Context, userID int64) ([]domain.ItemRequestExtended, error)
	ListAll(ctx context.Context, userID int64, from, size int) ([]domain.ItemRequestExtended, error)
}

// EmailService sends best-effort booking lifecycle notifications. Send
// failures are logged by callers and never fail the request.
type EmailService interface {
	SendBookingRequested(ctx context.Context, ownerEmail, ownerName, bookerName, itemName string) error
	SendBookingDecision(ctx context.Context, bookerEmail, bookerName, itemName string, approved bool) error
}

// pageOffset converts the from/size query pair into a row offset using
// page-index semantics: the page containing row "from" is returned.
func pageOffset(from, size int) int {
	return from / size * size
}
