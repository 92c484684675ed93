package schedule

import (
	"context"
	"time"

	"github.com/Richard-klement/va-squash-constantia/internal/booking"
	"github.com/Richard-klement/va-squash-constantia/internal/court"
)

// Cell is one court/slot intersection in the day grid.
type Cell struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Booked    bool   `json:"booked"`
	BookingID int    `json:"booking_id,omitempty"`
	UserID    int    `json:"user_id,omitempty"`
	UserName  string `json:"user_name,omitempty"`
}

// CourtRow is the slot sequence of a single court for one date.
type CourtRow struct {
	CourtID   int    `json:"court_id"`
	CourtName string `json:"court_name"`
	Cells     []Cell `json:"cells"`
}

// DayGrid is the full court x slot matrix for one date.
type DayGrid struct {
	Date          string       `json:"date"`
	Slots         []court.Slot `json:"slots"`
	Courts        []CourtRow   `json:"courts"`
	CurrentUserID int          `json:"current_user_id"`
}

// MonthDay carries the booking count for one calendar day. Days with
// no bookings are present with a zero count.
type MonthDay struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
}

// MonthSummary is the per-day booking density for one month, used by
// the calendar heat view.
type MonthSummary struct {
	Month string     `json:"month"`
	Days  []MonthDay `json:"days"`
}

type Service interface {
	Grid(ctx context.Context, date string) (*DayGrid, error)
	Month(ctx context.Context, month string) (*MonthSummary, error)
}

type service struct {
	courts   court.Repository
	bookings booking.Repository
	grid     *court.SlotGrid
}

func NewService(courts court.Repository, bookings booking.Repository, grid *court.SlotGrid) Service {
	return &service{courts: courts, bookings: bookings, grid: grid}
}

// Grid assembles the booking matrix for one date. Bookings are matched
// to cells by exact (court_id, start_time) comparison, which relies on
// the store returning canonical HH:MM strings.
func (s *service) Grid(ctx context.Context, date string) (*DayGrid, error) {
	if _, err := time.Parse(court.DateLayout, date); err != nil {
		return nil, booking.ErrInvalidDate
	}

	courts, err := s.courts.GetAllCourts(ctx)
	if err != nil {
		return nil, err
	}

	views, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	type key struct {
		courtID int
		start   string
	}
	byCell := make(map[key]booking.BookingView, len(views))
	for _, v := range views {
		byCell[key{v.CourtID, v.StartTime}] = v
	}

	slots := s.grid.Slots()
	rows := make([]CourtRow, 0, len(courts))
	for _, c := range courts {
		cells := make([]Cell, 0, len(slots))
		for _, slot := range slots {
			cell := Cell{StartTime: slot.Start, EndTime: slot.End}
			if v, ok := byCell[key{c.ID, slot.Start}]; ok {
				cell.Booked = true
				cell.BookingID = v.ID
				cell.UserID = v.UserID
				cell.UserName = v.UserName
			}
			cells = append(cells, cell)
		}
		rows = append(rows, CourtRow{CourtID: c.ID, CourtName: c.Name, Cells: cells})
	}

	return &DayGrid{Date: date, Slots: slots, Courts: rows}, nil
}

// Month returns booking counts for every day of the given YYYY-MM
// month, zero-filled so the calendar renders without gaps.
func (s *service) Month(ctx context.Context, month string) (*MonthSummary, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, booking.ErrInvalidDate
	}
	last := first.AddDate(0, 1, -1)

	stats, err := s.bookings.GetStatsByDay(ctx, first.Format(court.DateLayout), last.Format(court.DateLayout))
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(stats))
	for _, st := range stats {
		counts[st.Bucket] = st.Bookings
	}

	days := make([]MonthDay, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		date := d.Format(court.DateLayout)
		days = append(days, MonthDay{Date: date, Bookings: counts[date]})
	}

	return &MonthSummary{Month: month, Days: days}, nil
}
