package entity

import "time"

// NotificationContentMax límite del contenido de una notificación.
const NotificationContentMax = 500

// Notification mensaje del sistema o de otro usuario. Read arranca en false
// y solo el destinatario puede marcarla como leída.
type Notification struct {
	ID          string
	SenderID    string
	RecipientID string
	Content     string
	Read        bool
	SentAt      time.Time
}
