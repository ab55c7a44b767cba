package postgres

import (
	"context"
	"database/sql"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/repository"

	"github.com/lib/pq"
)

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (text, item_id, author_id, created)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Text, c.ItemID, c.AuthorID, c.Created).Scan(&c.ID)
}

func (r *commentRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	query := `SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
	          FROM comments c JOIN users u ON u.id = c.author_id
	          WHERE c.item_id = ANY($1) ORDER BY c.created ASC`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(itemIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
