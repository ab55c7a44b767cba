package http_test

import (
	"context"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockItemService struct {
	mock.Mock
}

func (m *mockItemService) Add(ctx context.Context, ownerID int64, item *domain.Item) error {
	args := m.Called(ctx, ownerID, item)
	return args.Error(0)
}

func (m *mockItemService) Update(ctx context.Context, userID, itemID int64, patch domain.ItemPatch) (*domain.Item, error) {
	args := m.Called(ctx, userID, itemID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *mockItemService) Delete(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *mockItemService) GetByID(ctx context.Context, viewerID, itemID int64) (*domain.ItemExtended, error) {
	args := m.Called(ctx, viewerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemExtended), args.Error(1)
}

func (m *mockItemService) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]domain.ItemExtended, error) {
	args := m.Called(ctx, ownerID, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemExtended), args.Error(1)
}

func (m *mockItemService) Search(ctx context.Context, text string, from, size int) ([]domain.Item, error) {
	args := m.Called(ctx, text, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *mockItemService) AddComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error) {
	args := m.Called(ctx, userID, itemID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.BookingDetail, error) {
	args := m.Called(ctx, bookerID, itemID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetail), args.Error(1)
}

func (m *mockBookingService) SetApproval(ctx context.Context, userID, bookingID int64, approved bool) (*domain.BookingDetail, error) {
	args := m.Called(ctx, userID, bookingID, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetail), args.Error(1)
}

func (m *mockBookingService) GetByID(ctx context.Context, viewerID, bookingID int64) (*domain.BookingDetail, error) {
	args := m.Called(ctx, viewerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetail), args.Error(1)
}

func (m *mockBookingService) ListByBooker(ctx context.Context, userID int64, state string, from, size int) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, userID, state, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}

func (m *mockBookingService) ListByOwner(ctx context.Context, userID int64, state string, from, size int) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, userID, state, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}

type mockItemRequestService struct {
	mock.Mock
}

func (m *mockItemRequestService) Add(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error) {
	args := m.Called(ctx, userID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}

func (m *mockItemRequestService) GetByID(ctx context.Context, userID, requestID int64) (*domain.ItemRequestExtended, error) {
	args := m.Called(ctx, userID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequestExtended), args.Error(1)
}

func (m *mockItemRequestService) ListOwn(ctx context.Context, userID int64) ([]domain.ItemRequestExtended, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemRequestExtended), args.Error(1)
}

func (m *mockItemRequestService) ListAll(ctx context.Context, userID int64, from, size int) ([]domain.ItemRequestExtended, error) {
	args := m.Called(ctx, userID, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemRequestExtended), args.Error(1)
}
