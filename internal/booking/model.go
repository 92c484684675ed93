package booking

import (
	"net/http"
	"time"

	"github.com/Richard-klement/va-squash-constantia/internal/apperror"
)

const StatusConfirmed = "confirmed"

var (
	ErrUnauthenticated    = apperror.New(http.StatusUnauthorized, "authentication required")
	ErrInvalidDate        = apperror.New(http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
	ErrInvalidStartTime   = apperror.New(http.StatusBadRequest, "start time is not on the slot grid")
	ErrInvalidEndTime     = apperror.New(http.StatusBadRequest, "end time does not match the slot duration")
	ErrUnknownCourt       = apperror.New(http.StatusBadRequest, "unknown court")
	ErrSlotTaken          = apperror.New(http.StatusConflict, "slot already booked for this court and time")
	ErrNotFoundOrNotOwner = apperror.New(http.StatusNotFound, "booking not found or no permission")
)

// Booking mirrors one row of the bookings table. BookingDate and the
// two times are plain strings in the canonical formats (YYYY-MM-DD and
// HH:MM); the repository formats them at the query boundary so no other
// layer ever re-formats a time value.
type Booking struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	CourtID     int       `db:"court_id" json:"court_id"`
	BookingDate string    `db:"booking_date" json:"booking_date"`
	StartTime   string    `db:"start_time" json:"start_time"`
	EndTime     string    `db:"end_time" json:"end_time"`
	Status      string    `db:"status" json:"status"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// BookingView is the API shape: a booking joined with the owner's
// display name. CurrentUserID is stamped per request by the handler so
// clients can run ownership checks; it is never cached or persisted.
type BookingView struct {
	Booking
	UserName      string `db:"user_name" json:"user_name"`
	CurrentUserID int    `db:"-" json:"current_user_id"`
}

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime"`
	CourtID   int    `json:"courtId" binding:"required"`
	Notes     string `json:"notes"`
}

type DayStats struct {
	Bucket   string `db:"bucket" json:"bucket"`
	Bookings int    `db:"bookings" json:"bookings"`
}

type CourtStats struct {
	CourtID   int    `db:"court_id" json:"court_id"`
	CourtName string `db:"court_name" json:"court_name"`
	Bookings  int    `db:"bookings" json:"bookings"`
}
