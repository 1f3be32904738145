package reminder

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"morent/internal/domain"
)

// storageKey is the one reserved key the whole reminder list lives under.
const storageKey = "reminders"

// retention: sent reminders older than this are dropped by Prune. Unsent
// reminders are kept regardless of age.
const retention = 30 * 24 * time.Hour

// Store persists the flat reminder list as a single JSON document. Every
// mutation is a read-modify-write of the whole list; there is no concurrency
// token, the scheduler is the only writer in practice.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load returns the stored list. A missing key is an empty list. A corrupted
// payload is logged and treated as empty rather than propagated.
func (s *Store) Load(ctx context.Context) ([]domain.Reminder, error) {
	raw, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []domain.Reminder{}, nil
	}

	var out []domain.Reminder
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("reminder store: corrupted payload under %q, starting empty: %v", storageKey, err)
		return []domain.Reminder{}, nil
	}
	return out, nil
}

// Save replaces the stored list wholesale.
func (s *Store) Save(ctx context.Context, reminders []domain.Reminder) error {
	raw, err := json.Marshal(reminders)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, storageKey, raw)
}

func (s *Store) Append(ctx context.Context, r domain.Reminder) error {
	list, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return s.Save(ctx, append(list, r))
}

func (s *Store) Remove(ctx context.Context, id uuid.UUID) error {
	list, err := s.Load(ctx)
	if err != nil {
		return err
	}

	out := list[:0]
	for _, r := range list {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return s.Save(ctx, out)
}

// Upsert stores r keyed by (booking, kind, scheduled date): an existing entry
// with the same key is updated in place, keeping its id and sent flag, so
// re-planning an edited booking does not accumulate duplicates.
func (s *Store) Upsert(ctx context.Context, r domain.Reminder) error {
	list, err := s.Load(ctx)
	if err != nil {
		return err
	}

	for i, cur := range list {
		if cur.BookingID == r.BookingID && cur.Kind == r.Kind && dateKey(cur.ScheduledAt) == dateKey(r.ScheduledAt) {
			r.ID = cur.ID
			r.IsSent = cur.IsSent
			r.CreatedAt = cur.CreatedAt
			list[i] = r
			return s.Save(ctx, list)
		}
	}
	return s.Save(ctx, append(list, r))
}

// Prune drops reminders that are both already sent and older than the
// retention window.
func (s *Store) Prune(ctx context.Context, now time.Time) error {
	list, err := s.Load(ctx)
	if err != nil {
		return err
	}

	out := list[:0]
	for _, r := range list {
		if r.IsSent && now.Sub(r.CreatedAt) > retention {
			continue
		}
		out = append(out, r)
	}
	return s.Save(ctx, out)
}
