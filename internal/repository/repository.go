package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
)

// ErrOverlap is returned by BookingRepository.Create when an approved
// booking already covers part of the requested window. The insert runs
// with the item row locked, so the check holds against concurrent writers.
var ErrOverlap = errors.New("approved booking overlaps requested window")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Item, error)
	Search(ctx context.Context, text string, limit, offset int) ([]domain.Item, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error)
}

type BookingRepository interface {
	// Create persists a booking after re-checking, under an item row lock,
	// that no approved booking overlaps [Start, End). Returns ErrOverlap
	// when one does.
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.BookingDetail, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	HasApprovedOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
	ListByBooker(ctx context.Context, bookerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]domain.BookingDetail, error)
	ListByOwner(ctx context.Context, ownerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]domain.BookingDetail, error)
	ListApprovedByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Booking, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Comment, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, request *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error)
	ListOthers(ctx context.Context, requesterID int64, limit, offset int) ([]domain.ItemRequest, error)
}
