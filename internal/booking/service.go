package booking

import (
	"context"
	"time"

	"github.com/Richard-klement/va-squash-constantia/internal/cache"
	"github.com/Richard-klement/va-squash-constantia/internal/court"
	"github.com/Richard-klement/va-squash-constantia/internal/metrics"
)

type Service interface {
	ListByDate(ctx context.Context, date string) ([]BookingView, error)
	Create(ctx context.Context, actorUserID int, req CreateBookingRequest) (*BookingView, error)
	Delete(ctx context.Context, actorUserID, bookingID int) error
	StatsByDay(ctx context.Context, from, to string) ([]DayStats, error)
	StatsByCourt(ctx context.Context, from, to string) ([]CourtStats, error)
}

type service struct {
	repo      Repository
	courtRepo court.Repository
	grid      *court.SlotGrid
	cache     *cache.Cache
}

func NewService(repo Repository, courtRepo court.Repository, grid *court.SlotGrid, c *cache.Cache) Service {
	return &service{
		repo:      repo,
		courtRepo: courtRepo,
		grid:      grid,
		cache:     c,
	}
}

func cacheKey(date string) string {
	return "bookings:" + date
}

func validDate(date string) bool {
	_, err := time.Parse(court.DateLayout, date)
	return err == nil && len(date) == len(court.DateLayout)
}

func (s *service) ListByDate(ctx context.Context, date string) ([]BookingView, error) {
	if !validDate(date) {
		return nil, ErrInvalidDate
	}

	var views []BookingView
	if s.cache.Get(ctx, cacheKey(date), &views) {
		metrics.RecordCacheLookup("hit")
		return views, nil
	}
	metrics.RecordCacheLookup("miss")

	views, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []BookingView{}
	}

	s.cache.Set(ctx, cacheKey(date), views)

	return views, nil
}

func (s *service) Create(ctx context.Context, actorUserID int, req CreateBookingRequest) (*BookingView, error) {
	if actorUserID <= 0 {
		return nil, ErrUnauthenticated
	}

	if !validDate(req.Date) {
		return nil, ErrInvalidDate
	}

	if !s.grid.ValidStart(req.StartTime) {
		return nil, ErrInvalidStartTime
	}

	endTime, err := s.grid.EndFor(req.StartTime)
	if err != nil {
		return nil, ErrInvalidStartTime
	}
	if req.EndTime != "" && req.EndTime != endTime {
		return nil, ErrInvalidEndTime
	}

	exists, err := s.courtRepo.CourtExists(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUnknownCourt
	}

	// Advisory pre-check so an obviously taken slot fails without a
	// write. The unique constraint still decides under races.
	taken, err := s.repo.SlotTaken(ctx, req.CourtID, req.Date, req.StartTime)
	if err != nil {
		return nil, err
	}
	if taken {
		metrics.RecordBookingConflict()
		return nil, ErrSlotTaken
	}

	id, err := s.repo.CreateBooking(ctx, actorUserID, req.CourtID, req.Date, req.StartTime, endTime, req.Notes)
	if err != nil {
		if err == ErrSlotTaken {
			metrics.RecordBookingConflict()
		}
		return nil, err
	}

	view, err := s.repo.GetViewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Del(ctx, cacheKey(req.Date))
	metrics.RecordBookingCreated()

	return view, nil
}

func (s *service) Delete(ctx context.Context, actorUserID, bookingID int) error {
	if actorUserID <= 0 {
		return ErrUnauthenticated
	}

	// Fetched only for cache invalidation; ownership is enforced by
	// the owner-scoped delete itself. A missing booking falls through
	// to DeleteOwned so the caller sees the same error as a
	// non-owned one.
	var date string
	if view, err := s.repo.GetViewByID(ctx, bookingID); err == nil {
		date = view.BookingDate
	}

	if err := s.repo.DeleteOwned(ctx, bookingID, actorUserID); err != nil {
		return err
	}

	if date != "" {
		s.cache.Del(ctx, cacheKey(date))
	}
	metrics.RecordBookingDeletion()

	return nil
}

func (s *service) StatsByDay(ctx context.Context, from, to string) ([]DayStats, error) {
	if !validDate(from) || !validDate(to) {
		return nil, ErrInvalidDate
	}
	return s.repo.GetStatsByDay(ctx, from, to)
}

func (s *service) StatsByCourt(ctx context.Context, from, to string) ([]CourtStats, error) {
	if !validDate(from) || !validDate(to) {
		return nil, ErrInvalidDate
	}
	return s.repo.GetStatsByCourt(ctx, from, to)
}
