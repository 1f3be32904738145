package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morent/internal/domain"
)

// memKV is an in-memory KV for tests.
type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func TestStore_Load_Empty(t *testing.T) {
	s := NewStore(newMemKV())

	list, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_Load_CorruptedPayload(t *testing.T) {
	kv := newMemKV()
	kv.data[storageKey] = []byte("{not json")
	s := NewStore(kv)

	list, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	ctx := context.Background()

	in := []domain.Reminder{
		{
			ID:          uuid.New(),
			BookingID:   7,
			Kind:        domain.ReminderCheckIn,
			Title:       "Напоминание о заезде",
			Message:     "Завтра заезд",
			ScheduledAt: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        uuid.New(),
			BookingID: 8,
			Kind:      domain.ReminderCustom,
			Title:     "Проверить ключи",
			IsSent:    true,
			CreatedAt: time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC),
		},
	}

	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// persisting a just-loaded list reproduces the stored bytes
	before := append([]byte(nil), kv.data[storageKey]...)
	require.NoError(t, s.Save(ctx, out))
	assert.Equal(t, before, kv.data[storageKey])
}

func TestStore_AppendAndRemove(t *testing.T) {
	s := NewStore(newMemKV())
	ctx := context.Background()

	r1 := domain.Reminder{ID: uuid.New(), BookingID: 1, Kind: domain.ReminderCustom, CreatedAt: time.Now().UTC()}
	r2 := domain.Reminder{ID: uuid.New(), BookingID: 2, Kind: domain.ReminderCustom, CreatedAt: time.Now().UTC()}

	require.NoError(t, s.Append(ctx, r1))
	require.NoError(t, s.Append(ctx, r2))

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, s.Remove(ctx, r1.ID))

	list, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, r2.ID, list[0].ID)
}

func TestStore_Prune(t *testing.T) {
	s := NewStore(newMemKV())
	ctx := context.Background()
	now := time.Now()

	oldSent := domain.Reminder{ID: uuid.New(), IsSent: true, CreatedAt: now.AddDate(0, 0, -40)}
	oldUnsent := domain.Reminder{ID: uuid.New(), IsSent: false, CreatedAt: now.AddDate(0, 0, -40)}
	freshSent := domain.Reminder{ID: uuid.New(), IsSent: true, CreatedAt: now.AddDate(0, 0, -5)}
	freshUnsent := domain.Reminder{ID: uuid.New(), IsSent: false, CreatedAt: now.AddDate(0, 0, -5)}

	require.NoError(t, s.Save(ctx, []domain.Reminder{oldSent, oldUnsent, freshSent, freshUnsent}))
	require.NoError(t, s.Prune(ctx, now))

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	ids := make([]uuid.UUID, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}
	assert.NotContains(t, ids, oldSent.ID)
	assert.Contains(t, ids, oldUnsent.ID)
	assert.Contains(t, ids, freshSent.ID)
	assert.Contains(t, ids, freshUnsent.ID)
}

func TestStore_Upsert_NoDuplicates(t *testing.T) {
	s := NewStore(newMemKV())
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	first := domain.Reminder{
		ID:          uuid.New(),
		BookingID:   10,
		Kind:        domain.ReminderCheckIn,
		Message:     "Завтра заезд гостя Иван в Морент",
		ScheduledAt: day,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, s.Upsert(ctx, first))

	// booking edited, same slot: message changes, entry count does not
	second := first
	second.ID = uuid.New()
	second.Message = "Завтра заезд гостя Пётр в Морент"
	require.NoError(t, s.Upsert(ctx, second))

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID, "upsert keeps the original id")
	assert.Equal(t, "Завтра заезд гостя Пётр в Морент", list[0].Message)

	// a different slot for the same booking is a new entry
	third := first
	third.ID = uuid.New()
	third.ScheduledAt = day.AddDate(0, 0, 2)
	require.NoError(t, s.Upsert(ctx, third))

	list, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestStore_Upsert_PreservesSentFlag(t *testing.T) {
	s := NewStore(newMemKV())
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	sent := domain.Reminder{
		ID:          uuid.New(),
		BookingID:   10,
		Kind:        domain.ReminderCheckOut,
		ScheduledAt: day,
		IsSent:      true,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, s.Upsert(ctx, sent))

	update := sent
	update.ID = uuid.New()
	update.IsSent = false
	require.NoError(t, s.Upsert(ctx, update))

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsSent, "already delivered slot stays delivered")
}
