package court

import (
	"fmt"
	"time"
)

// TimeLayout is the single time-of-day format used across the API,
// the store and the schedule grid. Bookings are matched to grid cells
// by exact string comparison, so every code path must format through
// this layout.
const TimeLayout = "15:04"

// DateLayout is the calendar-date format used across the API.
const DateLayout = "2006-01-02"

// SlotGrid generates the fixed daily slot sequence for the club:
// slotMinutes-long intervals starting at open and stepping until the
// last start at or before close.
type SlotGrid struct {
	openMinutes  int
	closeMinutes int
	slotMinutes  int
}

func NewSlotGrid(open, close string, slotMinutes int) (*SlotGrid, error) {
	openM, err := parseMinutes(open)
	if err != nil {
		return nil, fmt.Errorf("invalid open time %q: %w", open, err)
	}
	closeM, err := parseMinutes(close)
	if err != nil {
		return nil, fmt.Errorf("invalid close time %q: %w", close, err)
	}
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", slotMinutes)
	}
	if closeM < openM {
		return nil, fmt.Errorf("close time %s is before open time %s", close, open)
	}

	return &SlotGrid{
		openMinutes:  openM,
		closeMinutes: closeM,
		slotMinutes:  slotMinutes,
	}, nil
}

// Slots returns the ordered slot sequence, inclusive of a slot starting
// exactly at close time.
func (g *SlotGrid) Slots() []Slot {
	var slots []Slot
	for m := g.openMinutes; m <= g.closeMinutes; m += g.slotMinutes {
		slots = append(slots, Slot{
			Start: formatMinutes(m),
			End:   formatMinutes(m + g.slotMinutes),
		})
	}
	return slots
}

// ValidStart reports whether s is a well-formed HH:MM string aligned to
// the grid.
func (g *SlotGrid) ValidStart(s string) bool {
	m, err := parseMinutes(s)
	if err != nil {
		return false
	}
	if m < g.openMinutes || m > g.closeMinutes {
		return false
	}
	return (m-g.openMinutes)%g.slotMinutes == 0
}

// EndFor returns the canonical end time for a slot starting at start.
func (g *SlotGrid) EndFor(start string) (string, error) {
	m, err := parseMinutes(start)
	if err != nil {
		return "", err
	}
	return formatMinutes(m + g.slotMinutes), nil
}

func (g *SlotGrid) SlotMinutes() int {
	return g.slotMinutes
}

func parseMinutes(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", (m/60)%24, m%60)
}
