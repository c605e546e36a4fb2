package entity

import "time"

// Estados válidos para Mentorship.
// requested: solicitada por un mentorado a un mentor.
// offered: publicada por un mentor, a la espera de mentorado.
// scheduled: con mentor y mentorado confirmados.
// concluded: finalizada por el mentor; habilita evaluaciones. Terminal.
// cancelled: cancelada por un participante antes de concluir. Terminal.
const (
	MentorshipRequested = "requested"
	MentorshipOffered   = "offered"
	MentorshipScheduled = "scheduled"
	MentorshipConcluded = "concluded"
	MentorshipCancelled = "cancelled"
)

// Roles de un Participant dentro de una mentoría.
const (
	ParticipantMentor = "mentor"
	ParticipantMentee = "mentee"
)

// Límites de contenido.
const (
	DialogueContentMax = 1000
	EvaluationScoreMin = 0
	EvaluationScoreMax = 5
)

// Mentorship sesión de mentoría entre un mentor y un mentorado.
type Mentorship struct {
	ID        string
	Name      string
	StartsAt  time.Time
	EndsAt    time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Concluded indica si la mentoría ya finalizó y puede evaluarse.
func (m *Mentorship) Concluded() bool {
	return m.Status == MentorshipConcluded
}

// Terminal indica si la mentoría no admite más transiciones de estado.
func (m *Mentorship) Terminal() bool {
	return m.Status == MentorshipConcluded || m.Status == MentorshipCancelled
}

// Participant vincula un User con una Mentorship con rol mentor o mentee.
type Participant struct {
	ID           string
	MentorshipID string
	UserID       string
	Role         string // mentor, mentee
	CreatedAt    time.Time
}

// Dialogue mensaje con marca de tiempo entre los participantes de una mentoría.
type Dialogue struct {
	ID           string
	MentorshipID string
	SenderID     string // UserID del participante que envía
	Content      string
	SentAt       time.Time
}

// Evaluation calificación 0–5 de una mentoría concluida.
// Única por par (MentorshipID, UserID).
type Evaluation struct {
	ID           string
	MentorshipID string
	UserID       string
	Score        int
	CreatedAt    time.Time
}
