package repository

import "github.com/tu-usuario/mentoria-pro/internal/domain/entity"

// MentorshipRepository define el puerto de persistencia para Mentorship y sus
// agregados (participantes, diálogos, evaluaciones).
type MentorshipRepository interface {
	Create(mentorship *entity.Mentorship) error
	GetByID(id string) (*entity.Mentorship, error)
	UpdateStatus(id, status string) error
	ListByUser(userID string) ([]*entity.Mentorship, error)
	ListOffered(limit, offset int) ([]*entity.Mentorship, error)

	CreateParticipant(participant *entity.Participant) error
	GetParticipant(mentorshipID, userID string) (*entity.Participant, error)
	ListParticipants(mentorshipID string) ([]*entity.Participant, error)

	CreateDialogue(dialogue *entity.Dialogue) error
	// ListDialogues devuelve los mensajes de la mentoría en orden cronológico.
	ListDialogues(mentorshipID string, limit, offset int) ([]*entity.Dialogue, error)

	// CreateEvaluation falla con el error de duplicado del dominio si ya existe
	// una evaluación para el par (mentoría, usuario).
	CreateEvaluation(evaluation *entity.Evaluation) error
	ListEvaluations(mentorshipID string) ([]*entity.Evaluation, error)
}
