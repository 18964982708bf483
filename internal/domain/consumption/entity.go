// internal/domain/consumption/entity.go
package consumption

import "time"

// DaysInWeek is the number of slots in the weekly ledger.
const DaysInWeek = 7

// Ledger is the per-user weekly calorie accumulator: one slot per calendar
// day of the tracked week plus the marker for that week's start boundary.
// Slots and marker live in a single stored document so a rollover can never
// be observed half-applied.
type Ledger struct {
	Slots     []int     `json:"slots"`
	WeekStart time.Time `json:"week_start"`
}

func emptyLedger(weekStart time.Time) Ledger {
	return Ledger{
		Slots:     make([]int, DaysInWeek),
		WeekStart: weekStart,
	}
}
