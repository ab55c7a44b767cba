package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestItemRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewItemRepository(db)
	ctx := context.Background()

	item := &domain.Item{
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   true,
		OwnerID:     4,
	}

	mock.ExpectQuery("INSERT INTO items").
		WithArgs(item.Name, item.Description, item.Available, item.OwnerID, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err = repo.Create(ctx, item)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewItemRepository(db)
	ctx := context.Background()

	t.Run("Success with request id", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "description", "available", "owner_id", "request_id"}).
			AddRow(1, "Drill", "Cordless drill", true, 4, 7)

		mock.ExpectQuery("FROM items WHERE id = \\$1").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		item, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, item)
		if assert.NotNil(t, item.RequestID) {
			assert.Equal(t, int64(7), *item.RequestID)
		}
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("FROM items WHERE id = \\$1").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		item, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, item)
	})
}

func TestItemRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewItemRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "available", "owner_id", "request_id"}).
		AddRow(1, "Drill", "Cordless drill", true, 4, nil).
		AddRow(2, "Hammer drill", "Heavy duty", true, 5, nil)

	mock.ExpectQuery("FROM items WHERE available = TRUE AND \\(name ILIKE \\$1 OR description ILIKE \\$1\\)").
		WithArgs("%drill%", 10, 0).
		WillReturnRows(rows)

	items, err := repo.Search(ctx, "drill", 10, 0)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewItemRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "available", "owner_id", "request_id"}).
		AddRow(1, "Drill", "Cordless drill", true, 4, nil)

	mock.ExpectQuery("FROM items WHERE owner_id = \\$1 ORDER BY id ASC LIMIT \\$2 OFFSET \\$3").
		WithArgs(int64(4), 20, 20).
		WillReturnRows(rows)

	items, err := repo.ListByOwner(ctx, 4, 20, 20)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(4), items[0].OwnerID)
}

func TestItemRepository_ListByRequestIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewItemRepository(db)
	ctx := context.Background()

	t.Run("Empty input skips the query", func(t *testing.T) {
		items, err := repo.ListByRequestIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Nil(t, items)
	})

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "description", "available", "owner_id", "request_id"}).
			AddRow(1, "Drill", "Cordless drill", true, 4, 7)

		mock.ExpectQuery("FROM items WHERE request_id = ANY\\(\\$1\\)").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(rows)

		items, err := repo.ListByRequestIDs(ctx, []int64{7})
		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})
}
