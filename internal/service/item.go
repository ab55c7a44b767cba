package service

import (
	"context"
	"strings"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/repository"
)

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
	}
}

func (s *itemService) Add(ctx context.Context, ownerID int64, item *domain.Item) error {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return asNotFound(err, "user does not exist")
	}
	item.OwnerID = ownerID
	return s.itemRepo.Create(ctx, item)
}

func (s *itemService) Update(ctx context.Context, userID, itemID int64, patch domain.ItemPatch) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, asNotFound(err, "item does not exist")
	}
	if item.OwnerID != userID {
		return nil, domain.NewForbidden("only the owner can update the item")
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, itemID int64) error {
	return s.itemRepo.Delete(ctx, itemID)
}

func (s *itemService) GetByID(ctx context.Context, viewerID, itemID int64) (*domain.ItemExtended, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, asNotFound(err, "item does not exist")
	}
	extended, err := s.composeExtended(ctx, []domain.Item{*item}, viewerID == item.OwnerID, time.Now())
	if err != nil {
		return nil, err
	}
	return &extended[0], nil
}

func (s *itemService) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]domain.ItemExtended, error) {
	items, err := s.itemRepo.ListByOwner(ctx, ownerID, size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	return s.composeExtended(ctx, items, true, time.Now())
}

func (s *itemService) Search(ctx context.Context, text string, from, size int) ([]domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}
	return s.itemRepo.Search(ctx, text, size, pageOffset(from, size))
}

func (s *itemService) AddComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error) {
	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err, "user does not exist")
	}
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, asNotFound(err, "item does not exist")
	}

	now := time.Now()
	rented, err := s.bookingRepo.HasFinishedBooking(ctx, itemID, userID, now)
	if err != nil {
		return nil, err
	}
	if !rented {
		return nil, domain.NewBookingError("user has not rented this item")
	}

	comment := &domain.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   userID,
		AuthorName: author.Name,
		Created:    now,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// composeExtended attaches comments and, when the viewer owns the items,
// the last and next approved bookings. Both the single-item and the bulk
// listing path go through here so last/next mean the same thing everywhere:
// last = latest start before now, next = earliest start after now.
func (s *itemService) composeExtended(ctx context.Context, items []domain.Item, withBookings bool, now time.Time) ([]domain.ItemExtended, error) {
	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	comments, err := s.commentRepo.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	commentsByItem := make(map[int64][]domain.Comment)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	// Approved bookings come back ordered by start ascending, so the last
	// booking before now is the final past element and the next one is the
	// first future element.
	bookingsByItem := make(map[int64][]domain.Booking)
	if withBookings {
		bookings, err := s.bookingRepo.ListApprovedByItemIDs(ctx, itemIDs)
		if err != nil {
			return nil, err
		}
		for _, b := range bookings {
			bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
		}
	}

	extended := make([]domain.ItemExtended, 0, len(items))
	for _, item := range items {
		ext := domain.ItemExtended{Item: item, Comments: []domain.Comment{}}
		if c := commentsByItem[item.ID]; c != nil {
			ext.Comments = c
		}
		for i, b := range bookingsByItem[item.ID] {
			booking := bookingsByItem[item.ID][i]
			if b.Start.Before(now) {
				ext.LastBooking = bookingRef(booking)
			} else if b.Start.After(now) && ext.NextBooking == nil {
				ext.NextBooking = bookingRef(booking)
			}
		}
		extended = append(extended, ext)
	}
	return extended, nil
}

func bookingRef(b domain.Booking) *domain.BookingRef {
	return &domain.BookingRef{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}
