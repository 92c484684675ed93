package booking

import "context"

type Repository interface {
	CreateBooking(ctx context.Context, userID, courtID int, date, startTime, endTime, notes string) (int, error)
	SlotTaken(ctx context.Context, courtID int, date, startTime string) (bool, error)
	GetViewByID(ctx context.Context, id int) (*BookingView, error)
	ListByDate(ctx context.Context, date string) ([]BookingView, error)
	DeleteOwned(ctx context.Context, id, userID int) error
	GetStatsByDay(ctx context.Context, from, to string) ([]DayStats, error)
	GetStatsByCourt(ctx context.Context, from, to string) ([]CourtStats, error)
}
