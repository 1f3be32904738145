package reminder

import (
	"context"

	"morent/internal/domain"
	"morent/internal/modules/notify"
)

// Sender is the delivery channel the engine pushes notifications through.
type Sender interface {
	Show(ctx context.Context, title, body, tag string, data map[string]any) notify.Outcome
}

// KV is the single-key persistent storage backing the Store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// DataSource supplies the live booking/apartment lists for a pipeline run.
type DataSource interface {
	Snapshot(ctx context.Context) ([]domain.Booking, []domain.Apartment, error)
}
