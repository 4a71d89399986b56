package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hmelo/inventario-api/internal/domain/notification"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository implementa a interface notification.Repository
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository cria uma nova instância de NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) notification.Repository {
	return &NotificationRepository{db: db}
}

// Create implementa notification.Repository.Create
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (id, message, product_id, read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.Message, n.ProductID, n.Read, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar notificação: %w", err)
	}
	return nil
}

// ListUnread implementa notification.Repository.ListUnread
func (r *NotificationRepository) ListUnread(ctx context.Context, limit, offset int) ([]*notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, message, product_id, read, created_at, updated_at
		FROM notifications
		WHERE read = false
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notificações: %w", err)
	}
	defer rows.Close()

	notifications := make([]*notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.ProductID, &n.Read,
			&n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler notificação: %w", err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return notifications, nil
}

// MarkAsRead implementa notification.Repository.MarkAsRead
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx,
		"UPDATE notifications SET read = true, updated_at = $2 WHERE id = $1",
		id, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao marcar notificação como lida: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return notification.ErrNotFound
	}
	return nil
}

// DeleteReadBefore implementa notification.Repository.DeleteReadBefore
func (r *NotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ct, err := r.db.Exec(ctx,
		"DELETE FROM notifications WHERE read = true AND updated_at < $1",
		cutoff)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover notificações antigas: %w", err)
	}
	return ct.RowsAffected(), nil
}
