package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmelo/inventario-api/internal/domain/notification"
)

type memNotifications struct {
	notification.Repository
	mu      sync.Mutex
	created []*notification.Notification
}

func (m *memNotifications) Create(ctx context.Context, n *notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, n)
	return nil
}

func (m *memNotifications) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	kept := m.created[:0]
	for _, n := range m.created {
		if n.Read && n.UpdatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	m.created = kept
	return removed, nil
}

func TestNotifyPersistsUnreadNotification(t *testing.T) {
	repo := &memNotifications{}
	svc := NewNotificationService(repo)

	err := svc.Notify(context.Background(), "Produto café está sem estoque.", "prod-1")
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, "Produto café está sem estoque.", n.Message)
	assert.Equal(t, "prod-1", n.ProductID)
	assert.False(t, n.Read)
	assert.NotEmpty(t, n.ID)
}

func TestCleanupSweepRemovesOldReadNotifications(t *testing.T) {
	repo := &memNotifications{}

	old := notification.NewNotification("antiga", "prod-1")
	old.Read = true
	old.UpdatedAt = time.Now().Add(-40 * 24 * time.Hour)

	recent := notification.NewNotification("recente", "prod-2")
	recent.Read = true

	unread := notification.NewNotification("não lida", "prod-3")
	unread.UpdatedAt = time.Now().Add(-40 * 24 * time.Hour)

	repo.created = []*notification.Notification{old, recent, unread}

	cleanup := NewNotificationCleanup(repo, noopLogger{})
	cleanup.sweep(context.Background())

	// Apenas a notificação lida e antiga é removida
	require.Len(t, repo.created, 2)
	assert.Equal(t, "recente", repo.created[0].Message)
	assert.Equal(t, "não lida", repo.created[1].Message)
}
