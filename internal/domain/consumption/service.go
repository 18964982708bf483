// internal/domain/consumption/service.go
package consumption

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/pkg/userlock"
)

// ErrNegativeCalories is returned when a posting carries a negative calorie
// amount.
var ErrNegativeCalories = errors.New("calories must not be negative")

// WeekStartDay selects which weekday opens the tracked week.
type WeekStartDay string

const (
	WeekStartSunday WeekStartDay = "sunday"
	WeekStartMonday WeekStartDay = "monday"
)

// Service handles the weekly consumption ledger. The rollover is lazy: every
// read and write first checks whether the tracked week has elapsed and, if
// so, zeroes the slots and advances the marker.
type Service struct {
	store     storage.Store
	locks     *userlock.Keyed
	log       *logrus.Logger
	weekStart WeekStartDay

	now func() time.Time
}

// NewService creates a new consumption service
func NewService(store storage.Store, locks *userlock.Keyed, log *logrus.Logger, weekStart WeekStartDay) *Service {
	if weekStart != WeekStartMonday {
		weekStart = WeekStartSunday
	}
	return &Service{
		store:     store,
		locks:     locks,
		log:       log,
		weekStart: weekStart,
		now:       time.Now,
	}
}

// Weekly returns the 7 calorie slots for the current tracked week, slot 0
// being the week-start day. Storage read failures degrade to an all-zero
// week.
func (s *Service) Weekly(ctx context.Context, userID string) []int {
	unlock := s.locks.Lock(lockKey(userID))
	defer unlock()

	ledger, err := s.loadCurrent(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("consumption read degraded to empty week")
		return make([]int, DaysInWeek)
	}

	slots := make([]int, DaysInWeek)
	copy(slots, ledger.Slots)
	return slots
}

// Post adds calories to the slot for the current day. Invoked by the order
// factory after an order has been durably written.
func (s *Service) Post(ctx context.Context, userID string, calories int) error {
	if calories < 0 {
		return fmt.Errorf("post consumption: %w", ErrNegativeCalories)
	}

	unlock := s.locks.Lock(lockKey(userID))
	defer unlock()

	ledger, err := s.loadCurrent(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load consumption ledger: %w", err)
	}

	ledger.Slots[s.dayIndex(s.now())] += calories

	if err := s.store.Set(ctx, userID, storage.KindConsumption, ledger); err != nil {
		return fmt.Errorf("failed to save consumption ledger: %w", err)
	}
	return nil
}

// loadCurrent loads the ledger, applying the lazy weekly rollover. The
// caller must hold the user's consumption lock.
func (s *Service) loadCurrent(ctx context.Context, userID string) (Ledger, error) {
	boundary := s.currentWeekStart(s.now())

	var ledger Ledger
	err := s.store.Get(ctx, userID, storage.KindConsumption, &ledger)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		ledger = emptyLedger(boundary)
	case err != nil:
		return Ledger{}, err
	}

	// Guard against malformed stored data.
	if len(ledger.Slots) != DaysInWeek {
		ledger = emptyLedger(boundary)
	}

	if ledger.WeekStart.Before(boundary) {
		ledger = emptyLedger(boundary)
		if err := s.store.Set(ctx, userID, storage.KindConsumption, ledger); err != nil {
			return Ledger{}, err
		}
	}

	return ledger, nil
}

// dayIndex maps a time to its slot: 0 for the week-start day through 6.
func (s *Service) dayIndex(t time.Time) int {
	return (int(t.Weekday()) - s.offset() + DaysInWeek) % DaysInWeek
}

// currentWeekStart returns midnight of the week-start day for t's week.
func (s *Service) currentWeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -s.dayIndex(t))
}

func (s *Service) offset() int {
	if s.weekStart == WeekStartMonday {
		return 1
	}
	return 0
}

func lockKey(userID string) string {
	return userID + ":" + string(storage.KindConsumption)
}
