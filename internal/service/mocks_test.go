package service_test

import (
	"context"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *mockItemRepository) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockItemRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *mockItemRepository) Search(ctx context.Context, text string, limit, offset int) ([]domain.Item, error) {
	args := m.Called(ctx, text, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *mockItemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	args := m.Called(ctx, requestIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.BookingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetail), args.Error(1)
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockBookingRepository) HasApprovedOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, itemID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepository) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, itemID, bookerID, now)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepository) ListByBooker(ctx context.Context, bookerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, bookerID, state, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}

func (m *mockBookingRepository) ListByOwner(ctx context.Context, ownerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, ownerID, state, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}

func (m *mockBookingRepository) ListApprovedByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Booking, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

type mockItemRequestRepository struct {
	mock.Mock
}

func (m *mockItemRequestRepository) Create(ctx context.Context, request *domain.ItemRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *mockItemRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}

func (m *mockItemRequestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

func (m *mockItemRequestRepository) ListOthers(ctx context.Context, requesterID int64, limit, offset int) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requesterID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendBookingRequested(ctx context.Context, ownerEmail, ownerName, bookerName, itemName string) error {
	args := m.Called(ctx, ownerEmail, ownerName, bookerName, itemName)
	return args.Error(0)
}

func (m *mockEmailService) SendBookingDecision(ctx context.Context, bookerEmail, bookerName, itemName string, approved bool) error {
	args := m.Called(ctx, bookerEmail, bookerName, itemName, approved)
	return args.Error(0)
}
