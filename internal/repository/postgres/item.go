package postgres

import (
	"context"
	"database/sql"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/repository"

	"github.com/lib/pq"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, i *domain.Item) error {
	query := `INSERT INTO items (name, description, available, owner_id, request_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, i.Name, i.Description, i.Available, i.OwnerID, i.RequestID).Scan(&i.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	i := &domain.Item{}
	query := `SELECT id, name, COALESCE(description, ''), available, owner_id, request_id FROM items WHERE id = $1`
	var requestID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &requestID)
	if err != nil {
		return nil, err
	}
	if requestID.Valid {
		i.RequestID = &requestID.Int64
	}
	return i, nil
}

func (r *itemRepository) Update(ctx context.Context, i *domain.Item) error {
	query := `UPDATE items SET name=$1, description=$2, available=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, i.Name, i.Description, i.Available, i.ID)
	return err
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Item, error) {
	query := `SELECT id, name, COALESCE(description, ''), available, owner_id, request_id
	          FROM items WHERE owner_id = $1 ORDER BY id ASC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) Search(ctx context.Context, text string, limit, offset int) ([]domain.Item, error) {
	query := `SELECT id, name, COALESCE(description, ''), available, owner_id, request_id
	          FROM items WHERE available = TRUE AND (name ILIKE $1 OR description ILIKE $1)
	          ORDER BY id ASC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, "%"+text+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	query := `SELECT id, name, COALESCE(description, ''), available, owner_id, request_id
	          FROM items WHERE request_id = ANY($1) ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(requestIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		var i domain.Item
		var requestID sql.NullInt64
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &requestID); err != nil {
			return nil, err
		}
		if requestID.Valid {
			i.RequestID = &requestID.Int64
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
