package booking

import (
	"context"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/Richard-klement/va-squash-constantia/internal/db"
)

// MySQL error 1062: duplicate entry for a unique key. The unique
// constraint on (court_id, booking_date, start_time) is the
// authoritative conflict check; any pre-read is advisory only.
const mysqlErrDupEntry = 1062

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// viewColumns formats dates and times to the canonical strings at the
// query boundary. TIME_FORMAT strips the seconds MySQL stores, so the
// store can never hand out "09:00:00" where the grid says "09:00".
const viewColumns = `
		b.id,
		b.user_id,
		b.court_id,
		DATE_FORMAT(b.booking_date, '%Y-%m-%d') AS booking_date,
		TIME_FORMAT(b.start_time, '%H:%i') AS start_time,
		TIME_FORMAT(b.end_time, '%H:%i') AS end_time,
		b.status,
		COALESCE(b.notes, '') AS notes,
		b.created_at,
		u.name AS user_name`

func (r *repository) CreateBooking(ctx context.Context, userID, courtID int, date, startTime, endTime, notes string) (int, error) {
	query := `
		INSERT INTO bookings (user_id, court_id, booking_date, start_time, end_time, status, notes)
		VALUES (?, ?, ?, ?, ?, 'confirmed', ?)
	`

	result, err := r.db.ExecContext(ctx, query, userID, courtID, date, startTime, endTime, notes)
	if err != nil {
		var me *mysqldriver.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDupEntry {
			return 0, ErrSlotTaken
		}
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}

func (r *repository) SlotTaken(ctx context.Context, courtID int, date, startTime string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE court_id = ? AND booking_date = ? AND start_time = ?
		)
	`

	return db.Exists(ctx, r.db, query, courtID, date, startTime)
}

func (r *repository) GetViewByID(ctx context.Context, id int) (*BookingView, error) {
	query := `
		SELECT ` + viewColumns + `
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		WHERE b.id = ?
	`

	var view BookingView
	err := r.db.GetContext(ctx, &view, query, id)
	if err != nil {
		return nil, err
	}

	return &view, nil
}

func (r *repository) ListByDate(ctx context.Context, date string) ([]BookingView, error) {
	query := `
		SELECT ` + viewColumns + `
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		WHERE b.booking_date = ?
		ORDER BY b.start_time ASC, b.court_id ASC
	`

	var views []BookingView
	err := r.db.SelectContext(ctx, &views, query, date)
	if err != nil {
		return nil, err
	}

	return views, nil
}

// DeleteOwned removes a booking only when it belongs to userID. A
// missing row and a row owned by someone else both affect zero rows,
// so callers cannot tell the two cases apart.
func (r *repository) DeleteOwned(ctx context.Context, id, userID int) error {
	query := `
		DELETE FROM bookings
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFoundOrNotOwner
	}

	return nil
}

func (r *repository) GetStatsByDay(ctx context.Context, from, to string) ([]DayStats, error) {
	query := `
		SELECT
			DATE_FORMAT(booking_date, '%Y-%m-%d') AS bucket,
			COUNT(*) AS bookings
		FROM bookings
		WHERE booking_date BETWEEN ? AND ?
		GROUP BY booking_date
		ORDER BY booking_date
	`

	var stats []DayStats
	if err := r.db.SelectContext(ctx, &stats, query, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *repository) GetStatsByCourt(ctx context.Context, from, to string) ([]CourtStats, error) {
	query := `
		SELECT
			c.id AS court_id,
			c.name AS court_name,
			COUNT(b.id) AS bookings
		FROM courts c
		LEFT JOIN bookings b ON b.court_id = c.id AND b.booking_date BETWEEN ? AND ?
		GROUP BY c.id, c.name
		ORDER BY c.id
	`

	var stats []CourtStats
	if err := r.db.SelectContext(ctx, &stats, query, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}
