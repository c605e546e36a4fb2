package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

// NotificationUseCase notificaciones entre usuarios: enviar, listar, marcar
// leídas. Solo el destinatario puede marcar una notificación como leída.
type NotificationUseCase struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
}

// NewNotificationUseCase construye el caso de uso con sus puertos.
func NewNotificationUseCase(repo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, userRepo: userRepo}
}

// Send crea una notificación no leída para el destinatario.
func (uc *NotificationUseCase) Send(senderID, recipientID, content string) (*dto.NotificationResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}
	if len(content) > entity.NotificationContentMax {
		return nil, domain.ErrInvalidInput
	}
	recipient, err := uc.userRepo.GetByID(recipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, domain.ErrUserNotFound
	}
	n := &entity.Notification{
		ID:          uuid.New().String(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		Read:        false,
		SentAt:      time.Now(),
	}
	if err := uc.repo.Create(n); err != nil {
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// ListForUser devuelve las notificaciones del usuario, más recientes primero.
func (uc *NotificationUseCase) ListForUser(userID string, unreadOnly bool, page dto.PageRequest) ([]*dto.NotificationResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByRecipient(userID, unreadOnly, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// MarkRead marca una notificación como leída. Falla con ErrForbidden si el
// solicitante no es el destinatario.
func (uc *NotificationUseCase) MarkRead(notificationID, userID string) error {
	n, err := uc.repo.GetByID(notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	if n.RecipientID != userID {
		return domain.ErrForbidden
	}
	return uc.repo.MarkRead(notificationID)
}

// MarkAllRead marca como leídas todas las notificaciones del usuario.
func (uc *NotificationUseCase) MarkAllRead(userID string) error {
	return uc.repo.MarkAllRead(userID)
}

// UnreadCount devuelve la cantidad de notificaciones sin leer.
func (uc *NotificationUseCase) UnreadCount(userID string) (int, error) {
	return uc.repo.CountUnread(userID)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:          n.ID,
		SenderID:    n.SenderID,
		RecipientID: n.RecipientID,
		Content:     n.Content,
		Read:        n.Read,
		SentAt:      n.SentAt,
	}
}
