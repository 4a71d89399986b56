package service

import (
	"context"

	"github.com/hmelo/inventario-api/internal/domain/notification"
)

// NotificationService implementa Notifier persistindo cada alerta
// como uma notificação não lida
type NotificationService struct {
	notifications notification.Repository
}

// NewNotificationService cria uma nova instância de NotificationService
func NewNotificationService(notifications notification.Repository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Notify registra um alerta de estoque para o produto informado
func (s *NotificationService) Notify(ctx context.Context, message, productID string) error {
	return s.notifications.Create(ctx, notification.NewNotification(message, productID))
}
