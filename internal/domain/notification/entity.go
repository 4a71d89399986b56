package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notificação não encontrada")

// Notification representa um alerta de estoque associado a um produto
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ProductID string    `json:"product_id"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNotification cria uma nova notificação não lida
func NewNotification(message, productID string) *Notification {
	now := time.Now()
	return &Notification{
		ID:        uuid.New().String(),
		Message:   message,
		ProductID: productID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
