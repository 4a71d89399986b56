package service

import (
	"context"
	"time"

	"github.com/hmelo/inventario-api/internal/domain/notification"
	"github.com/hmelo/inventario-api/pkg/logger"
)

// NotificationCleanup remove periodicamente notificações lidas antigas
type NotificationCleanup struct {
	notifications notification.Repository
	logger        logger.Logger
	interval      time.Duration
	retention     time.Duration
}

// NewNotificationCleanup cria uma nova instância de NotificationCleanup.
// Notificações lidas há mais de 30 dias são removidas uma vez por dia.
func NewNotificationCleanup(notifications notification.Repository, log logger.Logger) *NotificationCleanup {
	return &NotificationCleanup{
		notifications: notifications,
		logger:        log,
		interval:      24 * time.Hour,
		retention:     30 * 24 * time.Hour,
	}
}

// Run executa a limpeza periódica até o contexto ser cancelado
func (c *NotificationCleanup) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *NotificationCleanup) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-c.retention)
	removed, err := c.notifications.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		c.logger.Error("erro ao remover notificações antigas", "error", err)
		return
	}
	if removed > 0 {
		c.logger.Info("notificações antigas removidas", "count", removed)
	}
}
