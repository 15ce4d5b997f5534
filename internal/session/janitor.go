package session

import (
	"context"
	"log"
	"sync"
	"time"
)

// Janitor runs periodic cleanup of expired sessions for stores that do not
// expire records on their own (SQLite, MySQL).
type Janitor struct {
	store    Store
	interval time.Duration
	ticker   *time.Ticker
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewJanitor creates a session janitor. A non-positive interval defaults to
// one hour.
func NewJanitor(store Store, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Janitor{
		store:    store,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the cleanup loop.
func (j *Janitor) Start() {
	j.ticker = time.NewTicker(j.interval)
	log.Printf("[SessionJanitor] Started - interval: %v", j.interval)
	go j.run()
}

func (j *Janitor) run() {
	for {
		select {
		case <-j.ticker.C:
			j.sweep()
		case <-j.stopCh:
			log.Printf("[SessionJanitor] Stopped")
			return
		}
	}
}

func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := j.store.DeleteExpired(ctx)
	if err != nil {
		log.Printf("[SessionJanitor] Error during cleanup: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[SessionJanitor] Removed %d expired sessions", removed)
	}
}

// Stop stops the cleanup loop.
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() {
		if j.ticker != nil {
			j.ticker.Stop()
		}
		close(j.stopCh)
	})
}
