// Package scheduler owns the daily maintenance job: at every server-local
// midnight, all orders are purged so the kitchen display starts the day
// empty. Earnings records are never touched.
package scheduler

import (
	"context"
	"log"
	"time"
)

// clearTimeout bounds the delete so a wedged database cannot pin the job
// past the next trigger.
const clearTimeout = time.Minute

// OrderClearer defines the database method the scheduler needs.
// Satisfied by *database.Queries.
type OrderClearer interface {
	DeleteAllOrders(ctx context.Context) error
}

// Scheduler fires once per day at midnight. It is started explicitly and
// stopped through its context; there is no other state.
type Scheduler struct {
	store OrderClearer
	now   func() time.Time
}

// New creates a new Scheduler.
func New(store OrderClearer) *Scheduler {
	return &Scheduler{store: store, now: time.Now}
}

// Run blocks until ctx is cancelled, clearing all orders at each midnight.
// A failed clear is logged and the job simply waits for the next midnight;
// there is no retry.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		timer := time.NewTimer(untilNextMidnight(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.clearOrders(ctx)
		}
	}
}

func (s *Scheduler) clearOrders(ctx context.Context) {
	log.Println("Clearing orders at midnight")

	cctx, cancel := context.WithTimeout(ctx, clearTimeout)
	defer cancel()

	if err := s.store.DeleteAllOrders(cctx); err != nil {
		log.Printf("ERROR: clear orders: %v", err)
		return
	}
	log.Println("All orders have been deleted")
}

// untilNextMidnight returns the duration from now to the next 00:00 in now's
// location. At exactly midnight it returns a full day.
func untilNextMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return next.Sub(now)
}
