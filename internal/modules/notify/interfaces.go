package notify

import (
	"context"

	"morent/internal/domain"
)

// Repository persists delivered notifications for the admin feed.
type Repository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetRecent(ctx context.Context, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkAsRead(ctx context.Context, id int64) error
	MarkAllAsRead(ctx context.Context) error
}
