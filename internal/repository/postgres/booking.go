package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/repository"

	"github.com/lib/pq"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingDetailColumns = `b.id, b.start_date, b.end_date, b.status,
	        i.id, i.name, COALESCE(i.description, ''), i.available, i.owner_id, i.request_id,
	        u.id, u.name, u.email`

const bookingDetailFrom = `FROM bookings b
	        JOIN items i ON i.id = b.item_id
	        JOIN users u ON u.id = b.booker_id`

// Create locks the item row, re-checks the approved-overlap invariant and
// inserts, all in one transaction. Concurrent creates for the same item
// serialize on the lock, so two overlapping windows cannot both commit.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var itemID int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM items WHERE id = $1 FOR UPDATE`, b.ItemID).Scan(&itemID); err != nil {
		return err
	}

	var overlaps bool
	overlapQuery := `SELECT EXISTS (SELECT 1 FROM bookings WHERE item_id = $1 AND status = $2 AND start_date < $3 AND end_date > $4)`
	if err := tx.QueryRowContext(ctx, overlapQuery, b.ItemID, domain.BookingStatusApproved, b.End, b.Start).Scan(&overlaps); err != nil {
		return err
	}
	if overlaps {
		return repository.ErrOverlap
	}

	insert := `INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
	           VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := tx.QueryRowContext(ctx, insert, b.Start, b.End, b.ItemID, b.BookerID, b.Status).Scan(&b.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.BookingDetail, error) {
	query := `SELECT ` + bookingDetailColumns + ` ` + bookingDetailFrom + ` WHERE b.id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	d, err := scanBookingDetail(row)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *bookingRepository) HasApprovedOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error) {
	var overlaps bool
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE item_id = $1 AND status = $2 AND start_date < $3 AND end_date > $4)`
	err := r.db.QueryRowContext(ctx, query, itemID, domain.BookingStatusApproved, end, start).Scan(&overlaps)
	return overlaps, err
}

func (r *bookingRepository) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE item_id = $1 AND booker_id = $2 AND status = $3 AND end_date < $4)`
	err := r.db.QueryRowContext(ctx, query, itemID, bookerID, domain.BookingStatusApproved, now).Scan(&exists)
	return exists, err
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]domain.BookingDetail, error) {
	return r.list(ctx, "b.booker_id", bookerID, state, now, limit, offset)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]domain.BookingDetail, error) {
	return r.list(ctx, "i.owner_id", ownerID, state, now, limit, offset)
}

func (r *bookingRepository) list(ctx context.Context, userColumn string, userID int64, state domain.BookingState, now time.Time, limit, offset int) ([]domain.BookingDetail, error) {
	query := `SELECT ` + bookingDetailColumns + ` ` + bookingDetailFrom +
		fmt.Sprintf(` WHERE %s = $1`, userColumn)

	args := []interface{}{userID}
	argIdx := 2

	switch state {
	case domain.BookingStateAll:
		// no extra predicate
	case domain.BookingStateCurrent:
		query += fmt.Sprintf(" AND b.start_date < $%d AND b.end_date > $%d", argIdx, argIdx+1)
		args = append(args, now, now)
		argIdx += 2
	case domain.BookingStatePast:
		query += fmt.Sprintf(" AND b.end_date < $%d AND b.status = $%d", argIdx, argIdx+1)
		args = append(args, now, domain.BookingStatusApproved)
		argIdx += 2
	case domain.BookingStateFuture:
		query += fmt.Sprintf(" AND b.start_date > $%d", argIdx)
		args = append(args, now)
		argIdx++
	case domain.BookingStateWaiting:
		query += fmt.Sprintf(" AND b.status = $%d", argIdx)
		args = append(args, domain.BookingStatusWaiting)
		argIdx++
	case domain.BookingStateRejected:
		query += fmt.Sprintf(" AND b.status = $%d", argIdx)
		args = append(args, domain.BookingStatusRejected)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY b.start_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.BookingDetail
	for rows.Next() {
		d, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *d)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListApprovedByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	query := `SELECT id, start_date, end_date, item_id, booker_id, status
	          FROM bookings WHERE item_id = ANY($1) AND status = $2 ORDER BY start_date ASC`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(itemIDs), domain.BookingStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Start, &b.End, &b.ItemID, &b.BookerID, &b.Status); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingDetail(row rowScanner) (*domain.BookingDetail, error) {
	d := &domain.BookingDetail{}
	var requestID sql.NullInt64
	err := row.Scan(&d.ID, &d.Start, &d.End, &d.Status,
		&d.Item.ID, &d.Item.Name, &d.Item.Description, &d.Item.Available, &d.Item.OwnerID, &requestID,
		&d.Booker.ID, &d.Booker.Name, &d.Booker.Email)
	if err != nil {
		return nil, err
	}
	if requestID.Valid {
		d.Item.RequestID = &requestID.Int64
	}
	return d, nil
}
