package audit

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/quickcut/internal/models"
)

// Feed is the notification sink events end up in.
type Feed interface {
	AddNotification(ctx context.Context, message, typ string) (models.Notification, error)
}

type Logger struct {
	feed Feed
}

func New(feed Feed) *Logger {
	return &Logger{feed: feed}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	msg := ev.Message
	if msg == "" {
		msg = fmt.Sprintf("%s %s #%d", ev.Entity, ev.Action, ev.EntityID)
	}

	typ := ev.Type
	if typ == "" {
		typ = models.NotificationInfo
	}

	_, err := l.feed.AddNotification(ctx, msg, typ)
	return err
}
