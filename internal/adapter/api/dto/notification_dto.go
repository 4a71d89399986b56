package dto

import (
	"time"

	"github.com/hmelo/inventario-api/internal/domain/notification"
)

// NotificationResponse representa a resposta com dados de uma notificação
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ProductID string    `json:"product_id"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse representa a resposta com a lista de notificações não lidas
type NotificationListResponse struct {
	Data []NotificationResponse `json:"data"`
}

// ToNotificationResponse converte uma notificação do domínio para DTO de resposta
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		ProductID: n.ProductID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationListResponse converte uma lista de notificações do domínio para DTO de resposta
func ToNotificationListResponse(notifications []*notification.Notification) NotificationListResponse {
	data := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		data[i] = ToNotificationResponse(n)
	}

	return NotificationListResponse{Data: data}
}
