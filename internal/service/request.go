package service

import (
	"context"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/repository"
)

type itemRequestService struct {
	requestRepo repository.ItemRequestRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
}

func NewItemRequestService(
	requestRepo repository.ItemRequestRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) ItemRequestService {
	return &itemRequestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

func (s *itemRequestService) Add(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err, "user does not exist")
	}
	request := &domain.ItemRequest{
		Description: description,
		RequesterID: userID,
		Created:     time.Now(),
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *itemRequestService) GetByID(ctx context.Context, userID, requestID int64) (*domain.ItemRequestExtended, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err, "user does not exist")
	}
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, asNotFound(err, "request does not exist")
	}
	extended, err := s.attachItems(ctx, []domain.ItemRequest{*request})
	if err != nil {
		return nil, err
	}
	return &extended[0], nil
}

func (s *itemRequestService) ListOwn(ctx context.Context, userID int64) ([]domain.ItemRequestExtended, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err, "user does not exist")
	}
	requests, err := s.requestRepo.ListByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *itemRequestService) ListAll(ctx context.Context, userID int64, from, size int) ([]domain.ItemRequestExtended, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err, "user does not exist")
	}
	requests, err := s.requestRepo.ListOthers(ctx, userID, size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

// attachItems resolves, in one query, the items listed in answer to each
// request.
func (s *itemRequestService) attachItems(ctx context.Context, requests []domain.ItemRequest) ([]domain.ItemRequestExtended, error) {
	requestIDs := make([]int64, 0, len(requests))
	for _, req := range requests {
		requestIDs = append(requestIDs, req.ID)
	}

	items, err := s.itemRepo.ListByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	itemsByRequest := make(map[int64][]domain.Item)
	for _, item := range items {
		if item.RequestID != nil {
			itemsByRequest[*item.RequestID] = append(itemsByRequest[*item.RequestID], item)
		}
	}

	extended := make([]domain.ItemRequestExtended, 0, len(requests))
	for _, req := range requests {
		ext := domain.ItemRequestExtended{ItemRequest: req, Items: []domain.Item{}}
		if matched := itemsByRequest[req.ID]; matched != nil {
			ext.Items = matched
		}
		extended = append(extended, ext)
	}
	return extended, nil
}
