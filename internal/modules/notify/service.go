package notify

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"morent/internal/domain"
)

// Permission mirrors the platform notification permission model: unasked
// until the first request, then sticky granted or sticky denied. A denied
// permission is never re-prompted.
type Permission int

const (
	PermissionUnasked Permission = iota
	PermissionGranted
	PermissionDenied
)

// Prompt decides the outcome of the one-time permission request.
type Prompt func() bool

type Service struct {
	hub    *Hub
	repo   Repository
	prompt Prompt

	mu   sync.Mutex
	perm Permission
}

func NewService(hub *Hub, repo Repository, prompt Prompt) *Service {
	if prompt == nil {
		prompt = func() bool { return true }
	}
	return &Service{
		hub:    hub,
		repo:   repo,
		prompt: prompt,
	}
}

// IsSupported reports whether a delivery channel is configured at all.
func (s *Service) IsSupported() bool {
	return s.hub != nil
}

// RequestPermission is idempotent: it short-circuits to the stored answer
// and prompts at most once.
func (s *Service) RequestPermission() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.perm {
	case PermissionGranted:
		return true
	case PermissionDenied:
		return false
	}

	if s.prompt() {
		s.perm = PermissionGranted
		return true
	}
	s.perm = PermissionDenied
	return false
}

// Show delivers one notification: persists it to the feed and broadcasts it
// to connected admin clients. Missing channel or permission is a logged
// no-op, never an error to the caller.
func (s *Service) Show(ctx context.Context, title, body, tag string, data map[string]any) Outcome {
	if !s.IsSupported() {
		log.Printf("notify: no delivery channel, dropping %q", title)
		return OutcomeUnsupported
	}
	if !s.RequestPermission() {
		log.Printf("notify: permission denied, dropping %q", title)
		return OutcomeDenied
	}

	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			log.Printf("notify: encode data for %q: %v", tag, err)
			return OutcomeFailed
		}
		raw = b
	}

	n := &domain.Notification{
		Type:    typeForTag(tag),
		Title:   title,
		Message: body,
		Tag:     tag,
		Data:    raw,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notify: persist %q: %v", tag, err)
		return OutcomeFailed
	}

	s.hub.Broadcast(wsEnvelope{
		Event:     "notification",
		Payload:   n,
		Timestamp: time.Now().Unix(),
	})

	return OutcomeShown
}

// Recent returns the latest feed entries.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Notification, error) {
	return s.repo.GetRecent(ctx, limit)
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllAsRead(ctx)
}

type wsEnvelope struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

func typeForTag(tag string) domain.NotificationType {
	switch {
	case strings.HasPrefix(tag, "checkin-"):
		return domain.NotifCheckInReminder
	case strings.HasPrefix(tag, "checkout-"):
		return domain.NotifCheckOutReminder
	default:
		return domain.NotifCustomReminder
	}
}
