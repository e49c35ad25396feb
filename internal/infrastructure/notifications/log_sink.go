package notifications

import (
	"context"
	"log"
	"sync"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/usecase/interfaces"
)

// LogSink writes notifications to the process log.
type LogSink struct{}

var _ interfaces.INotificationSink = LogSink{}

func (LogSink) Notify(_ context.Context, n entities.Notification) {
	log.Printf("[opcost][notification] level=%s action=%s id=%s message=%q", n.Level, n.Action, n.RecordID, n.Message)
}

// Recorder keeps the most recent notifications in memory and forwards each one
// to Next when set. The HTTP layer exposes it as a feed.
type Recorder struct {
	mu      sync.RWMutex
	limit   int
	entries []entities.Notification
	Next    interfaces.INotificationSink
}

var _ interfaces.INotificationSink = (*Recorder)(nil)

func NewRecorder(limit int, next interfaces.INotificationSink) *Recorder {
	if limit <= 0 {
		limit = 100
	}
	return &Recorder{limit: limit, Next: next}
}

func (r *Recorder) Notify(ctx context.Context, n entities.Notification) {
	r.mu.Lock()
	r.entries = append(r.entries, n)
	if over := len(r.entries) - r.limit; over > 0 {
		r.entries = append([]entities.Notification(nil), r.entries[over:]...)
	}
	r.mu.Unlock()

	if r.Next != nil {
		r.Next.Notify(ctx, n)
	}
}

// Recent returns up to limit notifications, newest first.
func (r *Recorder) Recent(limit int) []entities.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]entities.Notification, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out
}
