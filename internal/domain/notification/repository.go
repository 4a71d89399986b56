package notification

import (
	"context"
	"time"
)

// Repository define as operações de persistência para notificações
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListUnread(ctx context.Context, limit, offset int) ([]*Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
