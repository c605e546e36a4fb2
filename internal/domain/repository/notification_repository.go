package repository

import "github.com/tu-usuario/mentoria-pro/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	// ListByRecipient devuelve las notificaciones del destinatario, más
	// recientes primero. Con unreadOnly filtra las no leídas.
	ListByRecipient(recipientID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id string) error
	MarkAllRead(recipientID string) error
	CountUnread(recipientID string) (int, error)
}
