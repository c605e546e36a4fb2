package dto

import "time"

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Content     string    `json:"content"`
	Read        bool      `json:"read"`
	SentAt      time.Time `json:"sent_at"`
}

// UnreadCountResponse salida del contador de no leídas.
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}
