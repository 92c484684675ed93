package court

import "time"

type Court struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Slot is one bookable interval on the daily grid. Start and End are
// canonical HH:MM strings, zero-padded, no seconds.
type Slot struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}
