package service

import (
	"context"
	"errors"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/logger"
	"github.com/AleksandrYakovlevgtn/shareit/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

func (s *bookingService) Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.BookingDetail, error) {
	if !end.After(start) {
		return nil, domain.NewBookingError("booking end must be after start")
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, asNotFound(err, "item does not exist")
	}
	if !item.Available {
		return nil, domain.NewBookingError("item is not available for booking")
	}

	overlaps, err := s.bookingRepo.HasApprovedOverlap(ctx, itemID, start, end)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, domain.NewBookingError("item is already booked for this period")
	}

	booker, err := s.userRepo.GetByID(ctx, bookerID)
	if err != nil {
		return nil, asNotFound(err, "user does not exist")
	}
	if bookerID == item.OwnerID {
		return nil, domain.NewNotFound("owner cannot book own item")
	}

	booking := &domain.Booking{
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   domain.BookingStatusWaiting,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		// The transactional re-check can still lose the race to a
		// concurrent approval.
		if errors.Is(err, repository.ErrOverlap) {
			return nil, domain.NewBookingError("item is already booked for this period")
		}
		return nil, err
	}

	if owner, err := s.userRepo.GetByID(ctx, item.OwnerID); err == nil {
		if err := s.emailSvc.SendBookingRequested(ctx, owner.Email, owner.Name, booker.Name, item.Name); err != nil {
			logger.Warn("failed to send booking request notification", "booking_id", booking.ID, "error", err)
		}
	}

	return &domain.BookingDetail{
		ID:     booking.ID,
		Start:  booking.Start,
		End:    booking.End,
		Status: booking.Status,
		Item:   *item,
		Booker: *booker,
	}, nil
}

func (s *bookingService) SetApproval(ctx context.Context, userID, bookingID int64, approved bool) (*domain.BookingDetail, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, asNotFound(err, "booking does not exist")
	}
	if booking.Status != domain.BookingStatusWaiting {
		return nil, domain.NewBookingError("booking has already been decided")
	}
	if userID != booking.Item.OwnerID {
		return nil, domain.NewNotFound("only the item owner can decide a booking")
	}

	status := domain.BookingStatusRejected
	if approved {
		status = domain.BookingStatusApproved
	}
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	if err := s.emailSvc.SendBookingDecision(ctx, booking.Booker.Email, booking.Booker.Name, booking.Item.Name, approved); err != nil {
		logger.Warn("failed to send booking decision notification", "booking_id", bookingID, "error", err)
	}

	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, viewerID, bookingID int64) (*domain.BookingDetail, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, asNotFound(err, "booking does not exist")
	}
	if viewerID != booking.Booker.ID && viewerID != booking.Item.OwnerID {
		return nil, domain.NewNotFound("booking is visible to the booker and the item owner only")
	}
	return booking, nil
}

func (s *bookingService) ListByBooker(ctx context.Context, userID int64, state string, from, size int) ([]domain.BookingDetail, error) {
	bookingState, err := domain.ParseBookingState(state)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err, "user does not exist")
	}
	return s.bookingRepo.ListByBooker(ctx, userID, bookingState, time.Now(), size, pageOffset(from, size))
}

func (s *bookingService) ListByOwner(ctx context.Context, userID int64, state string, from, size int) ([]domain.BookingDetail, error) {
	bookingState, err := domain.ParseBookingState(state)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err, "user does not exist")
	}
	return s.bookingRepo.ListByOwner(ctx, userID, bookingState, time.Now(), size, pageOffset(from, size))
}
