// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartRoundExpiryScheduler sweeps for rounds that were started but never
// finished (closed tab, abandoned game) and expires them once they are
// older than ttl.
func (s *GameService) StartRoundExpiryScheduler(ttl time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			expired, err := s.ExpireStaleRounds(ttl)
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}
			if expired > 0 {
				log.Printf("✅ Expired %d stale round(s)", expired)
			}
		}),
	)
}
