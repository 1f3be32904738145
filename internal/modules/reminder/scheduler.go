package reminder

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultInterval is the fixed period between pipeline runs.
const DefaultInterval = 30 * time.Minute

// Scheduler owns the periodic reminder pipeline. It is an explicit object
// with Start/Stop; nothing here is ambient state. Stop prevents future
// ticks only, an in-flight run finishes on its own.
type Scheduler struct {
	engine   *Engine
	source   DataSource
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	refresh chan struct{}
}

func NewScheduler(engine *Engine, source DataSource, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		engine:   engine,
		source:   source,
		interval: interval,
		refresh:  make(chan struct{}, 1),
	}
}

// Start runs the pipeline once immediately, then arms the repeating timer.
// Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	stopCh := s.stopCh
	s.mu.Unlock()

	s.runOnce(ctx)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runOnce(ctx)
			case <-s.refresh:
				s.runOnce(ctx)
			case <-stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Printf("reminder scheduler started, interval %v", s.interval)
}

// Stop halts the timer. No further pipeline runs happen after it returns
// (modulo a run already in flight).
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	close(s.stopCh)
	log.Println("reminder scheduler stopped")
}

// Refresh asks the scheduler to re-run the pipeline because the underlying
// booking/apartment set changed. Coalesces while a run is pending.
func (s *Scheduler) Refresh() {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if !running {
		return
	}

	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// runOnce is one scheduler tick: prune stale reminders, scan live bookings,
// deliver due custom reminders. A missed tick is never retried; the next one
// re-evaluates current date state fresh.
func (s *Scheduler) runOnce(ctx context.Context) {
	if err := s.engine.store.Prune(ctx, time.Now()); err != nil {
		log.Printf("reminder scheduler: prune: %v", err)
	}

	bookings, apartments, err := s.source.Snapshot(ctx)
	if err != nil {
		log.Printf("reminder scheduler: load data: %v", err)
		return
	}

	s.engine.ScanAndNotify(ctx, bookings, apartments)
	s.engine.deliverDue(ctx)
}
