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

// MentorshipUseCase sesiones de mentoría: solicitar, ofrecer, aceptar,
// finalizar, dialogar y evaluar. Toda operación sobre una mentoría existente
// exige ser participante.
type MentorshipUseCase struct {
	repo     repository.MentorshipRepository
	userRepo repository.UserRepository
	notifier *NotificationUseCase
}

// NewMentorshipUseCase construye el caso de uso con sus puertos. notifier
// puede ser nil.
func NewMentorshipUseCase(repo repository.MentorshipRepository, userRepo repository.UserRepository, notifier *NotificationUseCase) *MentorshipUseCase {
	return &MentorshipUseCase{repo: repo, userRepo: userRepo, notifier: notifier}
}

func validSession(name string, startsAt, endsAt time.Time) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrInvalidInput
	}
	if startsAt.IsZero() || endsAt.IsZero() || !endsAt.After(startsAt) {
		return "", domain.ErrInvalidInput
	}
	return name, nil
}

// Solicit crea una mentoría solicitada por un mentorado a un mentor habilitado,
// con ambos participantes. Autosolicitarse falla con ErrInvalidInput.
func (uc *MentorshipUseCase) Solicit(menteeID string, in dto.SolicitMentorshipRequest) (*dto.MentorshipResponse, error) {
	if menteeID == in.MentorID {
		return nil, domain.ErrInvalidInput
	}
	name, err := validSession(in.Name, in.StartsAt, in.EndsAt)
	if err != nil {
		return nil, err
	}
	mentor, err := uc.userRepo.GetByID(in.MentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, domain.ErrUserNotFound
	}
	if !mentor.MentorEligible {
		return nil, domain.ErrNotMentor
	}
	now := time.Now()
	m := &entity.Mentorship{
		ID:        uuid.New().String(),
		Name:      name,
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		Status:    entity.MentorshipRequested,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	participants := []*entity.Participant{
		{ID: uuid.New().String(), MentorshipID: m.ID, UserID: in.MentorID, Role: entity.ParticipantMentor, CreatedAt: now},
		{ID: uuid.New().String(), MentorshipID: m.ID, UserID: menteeID, Role: entity.ParticipantMentee, CreatedAt: now},
	}
	for _, p := range participants {
		if err := uc.repo.CreateParticipant(p); err != nil {
			return nil, err
		}
	}
	if uc.notifier != nil {
		_, _ = uc.notifier.Send(menteeID, in.MentorID, "Te solicitaron la mentoría \""+m.Name+"\"")
	}
	return uc.toMentorshipResponse(m, participants), nil
}

// Offer publica una sesión de mentoría abierta. Solo usuarios habilitados como
// mentores pueden ofrecer.
func (uc *MentorshipUseCase) Offer(mentorID string, in dto.OfferMentorshipRequest) (*dto.MentorshipResponse, error) {
	name, err := validSession(in.Name, in.StartsAt, in.EndsAt)
	if err != nil {
		return nil, err
	}
	mentor, err := uc.userRepo.GetByID(mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, domain.ErrUserNotFound
	}
	if !mentor.MentorEligible {
		return nil, domain.ErrNotMentor
	}
	now := time.Now()
	m := &entity.Mentorship{
		ID:        uuid.New().String(),
		Name:      name,
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		Status:    entity.MentorshipOffered,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	p := &entity.Participant{
		ID:           uuid.New().String(),
		MentorshipID: m.ID,
		UserID:       mentorID,
		Role:         entity.ParticipantMentor,
		CreatedAt:    now,
	}
	if err := uc.repo.CreateParticipant(p); err != nil {
		return nil, err
	}
	return uc.toMentorshipResponse(m, []*entity.Participant{p}), nil
}

// Accept confirma una mentoría y la pasa a scheduled.
// Sobre una oferta (offered): el que acepta se incorpora como mentorado.
// Sobre una solicitud (requested): solo el mentor participante puede aceptar.
func (uc *MentorshipUseCase) Accept(mentorshipID, actorID string) (*dto.MentorshipResponse, error) {
	m, err := uc.repo.GetByID(mentorshipID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMentorshipNotFound
	}
	existing, err := uc.repo.GetParticipant(mentorshipID, actorID)
	if err != nil {
		return nil, err
	}
	switch m.Status {
	case entity.MentorshipOffered:
		if existing != nil {
			return nil, domain.ErrConflict // el mentor no puede ser su propio mentorado
		}
		p := &entity.Participant{
			ID:           uuid.New().String(),
			MentorshipID: mentorshipID,
			UserID:       actorID,
			Role:         entity.ParticipantMentee,
			CreatedAt:    time.Now(),
		}
		if err := uc.repo.CreateParticipant(p); err != nil {
			return nil, err
		}
	case entity.MentorshipRequested:
		if existing == nil {
			return nil, domain.ErrNotParticipant
		}
		if existing.Role != entity.ParticipantMentor {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrConflict
	}
	if err := uc.repo.UpdateStatus(mentorshipID, entity.MentorshipScheduled); err != nil {
		return nil, err
	}
	m.Status = entity.MentorshipScheduled
	uc.notifyOthers(m, actorID, "La mentoría \""+m.Name+"\" fue agendada")
	return uc.withParticipants(m)
}

// Finalize concluye una mentoría agendada. Solo el mentor participante.
// concluded es terminal y habilita las evaluaciones.
func (uc *MentorshipUseCase) Finalize(mentorshipID, actorID string) (*dto.MentorshipResponse, error) {
	m, p, err := uc.participantOf(mentorshipID, actorID)
	if err != nil {
		return nil, err
	}
	if p.Role != entity.ParticipantMentor {
		return nil, domain.ErrForbidden
	}
	if m.Status != entity.MentorshipScheduled {
		return nil, domain.ErrConflict
	}
	if err := uc.repo.UpdateStatus(mentorshipID, entity.MentorshipConcluded); err != nil {
		return nil, err
	}
	m.Status = entity.MentorshipConcluded
	uc.notifyOthers(m, actorID, "La mentoría \""+m.Name+"\" fue concluida; ya se puede evaluar")
	return uc.withParticipants(m)
}

// Cancel cancela una mentoría que aún no concluyó. Cualquier participante.
func (uc *MentorshipUseCase) Cancel(mentorshipID, actorID string) (*dto.MentorshipResponse, error) {
	m, _, err := uc.participantOf(mentorshipID, actorID)
	if err != nil {
		return nil, err
	}
	if m.Terminal() {
		return nil, domain.ErrConflict
	}
	if err := uc.repo.UpdateStatus(mentorshipID, entity.MentorshipCancelled); err != nil {
		return nil, err
	}
	m.Status = entity.MentorshipCancelled
	uc.notifyOthers(m, actorID, "La mentoría \""+m.Name+"\" fue cancelada")
	return uc.withParticipants(m)
}

// SendDialogue envía un mensaje dentro de la mentoría. Solo participantes; una
// mentoría cancelada no admite mensajes.
func (uc *MentorshipUseCase) SendDialogue(mentorshipID, senderID string, in dto.SendDialogueRequest) (*dto.DialogueResponse, error) {
	m, _, err := uc.participantOf(mentorshipID, senderID)
	if err != nil {
		return nil, err
	}
	if m.Status == entity.MentorshipCancelled {
		return nil, domain.ErrConflict
	}
	content, err := validContent(in.Content, entity.DialogueContentMax)
	if err != nil {
		return nil, err
	}
	d := &entity.Dialogue{
		ID:           uuid.New().String(),
		MentorshipID: mentorshipID,
		SenderID:     senderID,
		Content:      content,
		SentAt:       time.Now(),
	}
	if err := uc.repo.CreateDialogue(d); err != nil {
		return nil, err
	}
	uc.notifyOthers(m, senderID, "Nuevo mensaje en la mentoría \""+m.Name+"\"")
	return toDialogueResponse(d), nil
}

// ListDialogues devuelve la conversación en orden cronológico. Solo participantes.
func (uc *MentorshipUseCase) ListDialogues(mentorshipID, requesterID string, page dto.PageRequest) ([]*dto.DialogueResponse, error) {
	if _, _, err := uc.participantOf(mentorshipID, requesterID); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.repo.ListDialogues(mentorshipID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DialogueResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDialogueResponse(d))
	}
	return out, nil
}

// Evaluate registra la calificación 0–5 de un participante sobre una mentoría
// concluida. Una segunda evaluación del mismo usuario falla con
// ErrAlreadyEvaluated (constraint único de (mentoría, usuario)).
func (uc *MentorshipUseCase) Evaluate(mentorshipID, userID string, in dto.EvaluateRequest) (*dto.EvaluationResponse, error) {
	if in.Score < entity.EvaluationScoreMin || in.Score > entity.EvaluationScoreMax {
		return nil, domain.ErrInvalidInput
	}
	m, _, err := uc.participantOf(mentorshipID, userID)
	if err != nil {
		return nil, err
	}
	if !m.Concluded() {
		return nil, domain.ErrNotConcluded
	}
	e := &entity.Evaluation{
		ID:           uuid.New().String(),
		MentorshipID: mentorshipID,
		UserID:       userID,
		Score:        in.Score,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.CreateEvaluation(e); err != nil {
		return nil, err
	}
	return &dto.EvaluationResponse{
		ID:           e.ID,
		MentorshipID: e.MentorshipID,
		UserID:       e.UserID,
		Score:        e.Score,
		CreatedAt:    e.CreatedAt,
	}, nil
}

// ListEvaluations devuelve las calificaciones de la mentoría. Solo participantes.
func (uc *MentorshipUseCase) ListEvaluations(mentorshipID, requesterID string) ([]*dto.EvaluationResponse, error) {
	if _, _, err := uc.participantOf(mentorshipID, requesterID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListEvaluations(mentorshipID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EvaluationResponse, 0, len(list))
	for _, e := range list {
		out = append(out, &dto.EvaluationResponse{
			ID:           e.ID,
			MentorshipID: e.MentorshipID,
			UserID:       e.UserID,
			Score:        e.Score,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out, nil
}

// ListForUser devuelve las mentorías donde el usuario participa.
func (uc *MentorshipUseCase) ListForUser(userID string) ([]*dto.MentorshipResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MentorshipResponse, 0, len(list))
	for _, m := range list {
		resp, err := uc.withParticipants(m)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// ListOffered devuelve las ofertas abiertas de mentoría.
func (uc *MentorshipUseCase) ListOffered(page dto.PageRequest) ([]*dto.MentorshipResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListOffered(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MentorshipResponse, 0, len(list))
	for _, m := range list {
		resp, err := uc.withParticipants(m)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// participantOf resuelve mentoría + participación del actor, con los errores
// del dominio correspondientes.
func (uc *MentorshipUseCase) participantOf(mentorshipID, userID string) (*entity.Mentorship, *entity.Participant, error) {
	m, err := uc.repo.GetByID(mentorshipID)
	if err != nil {
		return nil, nil, err
	}
	if m == nil {
		return nil, nil, domain.ErrMentorshipNotFound
	}
	p, err := uc.repo.GetParticipant(mentorshipID, userID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, domain.ErrNotParticipant
	}
	return m, p, nil
}

func (uc *MentorshipUseCase) notifyOthers(m *entity.Mentorship, actorID, content string) {
	if uc.notifier == nil {
		return
	}
	participants, err := uc.repo.ListParticipants(m.ID)
	if err != nil {
		return
	}
	for _, p := range participants {
		if p.UserID == actorID {
			continue
		}
		_, _ = uc.notifier.Send(actorID, p.UserID, content)
	}
}

func (uc *MentorshipUseCase) withParticipants(m *entity.Mentorship) (*dto.MentorshipResponse, error) {
	participants, err := uc.repo.ListParticipants(m.ID)
	if err != nil {
		return nil, err
	}
	return uc.toMentorshipResponse(m, participants), nil
}

func (uc *MentorshipUseCase) toMentorshipResponse(m *entity.Mentorship, participants []*entity.Participant) *dto.MentorshipResponse {
	if m == nil {
		return nil
	}
	out := &dto.MentorshipResponse{
		ID:        m.ID,
		Name:      m.Name,
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
	for _, p := range participants {
		out.Participants = append(out.Participants, dto.ParticipantResponse{
			ID:     p.ID,
			UserID: p.UserID,
			Role:   p.Role,
		})
	}
	return out
}

func toDialogueResponse(d *entity.Dialogue) *dto.DialogueResponse {
	if d == nil {
		return nil
	}
	return &dto.DialogueResponse{
		ID:           d.ID,
		MentorshipID: d.MentorshipID,
		SenderID:     d.SenderID,
		Content:      d.Content,
		SentAt:       d.SentAt,
	}
}
