package notify

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheduler is the seam between expense creation and whatever actually
// delivers reminders. The registry logic only ever asks for "this title and
// body at this instant"; delivery is someone else's problem.
type Scheduler interface {
	ScheduleAt(at time.Time, title, body string) (string, error)
}

// TimerScheduler is the in-process implementation: one timer per reminder,
// delivery is a log line. Suitable for a single-instance deployment; the
// interface is the place to swap in a push provider.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{timers: make(map[string]*time.Timer)}
}

func (s *TimerScheduler) ScheduleAt(at time.Time, title, body string) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	s.timers[id] = time.AfterFunc(time.Until(at), func() {
		log.Printf("INFO: Notification fired - %s: %s", title, body)
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
	})
	s.mu.Unlock()

	log.Printf("INFO: Notification scheduled for %s - %s", at.Format(time.RFC3339), title)
	return id, nil
}

// Stop cancels every pending timer. Called on shutdown.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
