package dto

import "time"

// SolicitMentorshipRequest entrada para solicitar una mentoría a un mentor.
type SolicitMentorshipRequest struct {
	MentorID string    `json:"mentor_id" validate:"required,uuid"`
	Name     string    `json:"name" validate:"required,min=1,max=200"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
}

// OfferMentorshipRequest entrada para que un mentor publique una sesión.
type OfferMentorshipRequest struct {
	Name     string    `json:"name" validate:"required,min=1,max=200"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
}

// MentorshipResponse salida de una mentoría con sus participantes.
type MentorshipResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	StartsAt     time.Time             `json:"starts_at"`
	EndsAt       time.Time             `json:"ends_at"`
	Status       string                `json:"status"`
	Participants []ParticipantResponse `json:"participants,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// ParticipantResponse salida de un participante.
type ParticipantResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// SendDialogueRequest entrada para enviar un mensaje dentro de la mentoría.
type SendDialogueRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// DialogueResponse salida de un mensaje de diálogo.
type DialogueResponse struct {
	ID           string    `json:"id"`
	MentorshipID string    `json:"mentorship_id"`
	SenderID     string    `json:"sender_id"`
	Content      string    `json:"content"`
	SentAt       time.Time `json:"sent_at"`
}

// EvaluateRequest entrada para calificar una mentoría concluida.
type EvaluateRequest struct {
	Score int `json:"score" validate:"min=0,max=5"`
}

// EvaluationResponse salida de una evaluación.
type EvaluationResponse struct {
	ID           string    `json:"id"`
	MentorshipID string    `json:"mentorship_id"`
	UserID       string    `json:"user_id"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}
