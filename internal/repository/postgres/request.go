package postgres

import (
	"context"
	"database/sql"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/repository"
)

type itemRequestRepository struct {
	db *sql.DB
}

func NewItemRequestRepository(db *sql.DB) repository.ItemRequestRepository {
	return &itemRequestRepository{db: db}
}

func (r *itemRequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	query := `INSERT INTO requests (description, requester_id, created)
	          VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, req.Description, req.RequesterID, req.Created).Scan(&req.ID)
}

func (r *itemRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	req := &domain.ItemRequest{}
	query := `SELECT id, description, requester_id, created FROM requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *itemRequestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created
	          FROM requests WHERE requester_id = $1 ORDER BY created DESC`
	rows, err := r.db.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItemRequests(rows)
}

func (r *itemRequestRepository) ListOthers(ctx context.Context, requesterID int64, limit, offset int) ([]domain.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created
	          FROM requests WHERE requester_id <> $1 ORDER BY created DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, requesterID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItemRequests(rows)
}

func scanItemRequests(rows *sql.Rows) ([]domain.ItemRequest, error) {
	var requests []domain.ItemRequest
	for rows.Next() {
		var req domain.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
