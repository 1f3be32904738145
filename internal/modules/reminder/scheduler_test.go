package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morent/internal/domain"
	"morent/internal/modules/notify"
)

// countingSender counts delivery attempts across goroutines.
type countingSender struct {
	mu    sync.Mutex
	calls int
}

func (s *countingSender) Show(context.Context, string, string, string, map[string]any) notify.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return notify.OutcomeShown
}

func (s *countingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// staticSource serves one booking whose check-in is always tomorrow, so
// every pipeline run attempts exactly one delivery.
type staticSource struct{}

func (staticSource) Snapshot(context.Context) ([]domain.Booking, []domain.Apartment, error) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	return []domain.Booking{
			{ID: 1, GuestName: "Иван", CheckIn: tomorrow, CheckOut: tomorrow.AddDate(0, 0, 3), ApartmentID: 1},
		}, []domain.Apartment{
			{ID: 1, Title: "Морент"},
		}, nil
}

func TestScheduler_RunsImmediatelyOnStart(t *testing.T) {
	sender := &countingSender{}
	e := NewEngine(NewStore(newMemKV()), sender)
	s := NewScheduler(e, staticSource{}, time.Hour)
	defer s.Stop()

	s.Start(context.Background())

	assert.Equal(t, 1, sender.count(), "pipeline must run once before the first tick")
}

func TestScheduler_TicksPeriodically(t *testing.T) {
	sender := &countingSender{}
	e := NewEngine(NewStore(newMemKV()), sender)
	s := NewScheduler(e, staticSource{}, 20*time.Millisecond)
	defer s.Stop()

	s.Start(context.Background())
	time.Sleep(90 * time.Millisecond)

	assert.GreaterOrEqual(t, sender.count(), 3)
}

func TestScheduler_StopFreezesDeliveryCount(t *testing.T) {
	sender := &countingSender{}
	e := NewEngine(NewStore(newMemKV()), sender)
	s := NewScheduler(e, staticSource{}, 15*time.Millisecond)

	s.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	frozen := sender.count()
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, frozen, sender.count(), "no pipeline runs after Stop")
}

func TestScheduler_RefreshTriggersRun(t *testing.T) {
	sender := &countingSender{}
	e := NewEngine(NewStore(newMemKV()), sender)
	s := NewScheduler(e, staticSource{}, time.Hour)
	defer s.Stop()

	s.Start(context.Background())
	require.Equal(t, 1, sender.count())

	s.Refresh()

	assert.Eventually(t, func() bool { return sender.count() == 2 },
		time.Second, 5*time.Millisecond)
}

func TestScheduler_RefreshAfterStopIsNoop(t *testing.T) {
	sender := &countingSender{}
	e := NewEngine(NewStore(newMemKV()), sender)
	s := NewScheduler(e, staticSource{}, time.Hour)

	s.Start(context.Background())
	s.Stop()
	frozen := sender.count()

	s.Refresh()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, frozen, sender.count())
}

func TestScheduler_StartTwiceIsNoop(t *testing.T) {
	sender := &countingSender{}
	e := NewEngine(NewStore(newMemKV()), sender)
	s := NewScheduler(e, staticSource{}, time.Hour)
	defer s.Stop()

	s.Start(context.Background())
	s.Start(context.Background())

	assert.Equal(t, 1, sender.count(), "second Start must not run the pipeline again")
}
