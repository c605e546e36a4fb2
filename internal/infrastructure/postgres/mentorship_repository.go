package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

var _ repository.MentorshipRepository = (*MentorshipRepo)(nil)

// MentorshipRepo implementación del puerto MentorshipRepository sobre PostgreSQL.
type MentorshipRepo struct {
	q Querier
}

// NewMentorshipRepository construye el adaptador.
func NewMentorshipRepository(q Querier) *MentorshipRepo {
	return &MentorshipRepo{q: q}
}

const mentorshipColumns = `id, name, starts_at, ends_at, status, created_at, updated_at`

// Create persiste una mentoría.
func (r *MentorshipRepo) Create(m *entity.Mentorship) error {
	query := `
		INSERT INTO mentorships (` + mentorshipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.StartsAt, m.EndsAt, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mentorship: %w", err)
	}
	return nil
}

// GetByID obtiene una mentoría por ID.
func (r *MentorshipRepo) GetByID(id string) (*entity.Mentorship, error) {
	query := `SELECT ` + mentorshipColumns + ` FROM mentorships WHERE id = $1`
	var m entity.Mentorship
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.StartsAt, &m.EndsAt, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mentorship: %w", err)
	}
	return &m, nil
}

// UpdateStatus cambia el estado de la mentoría.
func (r *MentorshipRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE mentorships SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update mentorship status: %w", err)
	}
	return nil
}

// ListByUser devuelve las mentorías donde el usuario participa, más recientes primero.
func (r *MentorshipRepo) ListByUser(userID string) ([]*entity.Mentorship, error) {
	query := `
		SELECT m.id, m.name, m.starts_at, m.ends_at, m.status, m.created_at, m.updated_at
		FROM mentorships m
		JOIN mentorship_participants p ON p.mentorship_id = m.id
		WHERE p.user_id = $1
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list mentorships by user: %w", err)
	}
	defer rows.Close()
	return scanMentorships(rows)
}

// ListOffered devuelve las mentorías publicadas por mentores a la espera de mentorado.
func (r *MentorshipRepo) ListOffered(limit, offset int) ([]*entity.Mentorship, error) {
	query := `
		SELECT ` + mentorshipColumns + ` FROM mentorships
		WHERE status = $1
		ORDER BY starts_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entity.MentorshipOffered, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list offered mentorships: %w", err)
	}
	defer rows.Close()
	return scanMentorships(rows)
}

func scanMentorships(rows pgx.Rows) ([]*entity.Mentorship, error) {
	var list []*entity.Mentorship
	for rows.Next() {
		var m entity.Mentorship
		if err := rows.Scan(&m.ID, &m.Name, &m.StartsAt, &m.EndsAt, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan mentorship: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CreateParticipant vincula un usuario a la mentoría.
func (r *MentorshipRepo) CreateParticipant(p *entity.Participant) error {
	query := `
		INSERT INTO mentorship_participants (id, mentorship_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.MentorshipID, p.UserID, p.Role, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert participant: %w", err)
	}
	return nil
}

// GetParticipant obtiene el vínculo usuario-mentoría, o nil si no participa.
func (r *MentorshipRepo) GetParticipant(mentorshipID, userID string) (*entity.Participant, error) {
	query := `
		SELECT id, mentorship_id, user_id, role, created_at
		FROM mentorship_participants WHERE mentorship_id = $1 AND user_id = $2`
	var p entity.Participant
	err := r.q.QueryRow(context.Background(), query, mentorshipID, userID).Scan(
		&p.ID, &p.MentorshipID, &p.UserID, &p.Role, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}
	return &p, nil
}

// ListParticipants devuelve los participantes de la mentoría.
func (r *MentorshipRepo) ListParticipants(mentorshipID string) ([]*entity.Participant, error) {
	query := `
		SELECT id, mentorship_id, user_id, role, created_at
		FROM mentorship_participants WHERE mentorship_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, mentorshipID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Participant
	for rows.Next() {
		var p entity.Participant
		if err := rows.Scan(&p.ID, &p.MentorshipID, &p.UserID, &p.Role, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CreateDialogue persiste un mensaje de la mentoría.
func (r *MentorshipRepo) CreateDialogue(d *entity.Dialogue) error {
	query := `
		INSERT INTO mentorship_dialogues (id, mentorship_id, sender_id, content, sent_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.MentorshipID, d.SenderID, d.Content, d.SentAt)
	if err != nil {
		return fmt.Errorf("insert dialogue: %w", err)
	}
	return nil
}

// ListDialogues devuelve los mensajes de la mentoría en orden cronológico.
func (r *MentorshipRepo) ListDialogues(mentorshipID string, limit, offset int) ([]*entity.Dialogue, error) {
	query := `
		SELECT id, mentorship_id, sender_id, content, sent_at
		FROM mentorship_dialogues WHERE mentorship_id = $1
		ORDER BY sent_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, mentorshipID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list dialogues: %w", err)
	}
	defer rows.Close()

	var list []*entity.Dialogue
	for rows.Next() {
		var d entity.Dialogue
		if err := rows.Scan(&d.ID, &d.MentorshipID, &d.SenderID, &d.Content, &d.SentAt); err != nil {
			return nil, fmt.Errorf("scan dialogue: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// CreateEvaluation persiste una evaluación. El índice único sobre
// (mentorship_id, user_id) garantiza la unicidad por usuario.
func (r *MentorshipRepo) CreateEvaluation(e *entity.Evaluation) error {
	query := `
		INSERT INTO mentorship_evaluations (id, mentorship_id, user_id, score, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, e.ID, e.MentorshipID, e.UserID, e.Score, e.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyEvaluated
		}
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

// ListEvaluations devuelve las evaluaciones de la mentoría.
func (r *MentorshipRepo) ListEvaluations(mentorshipID string) ([]*entity.Evaluation, error) {
	query := `
		SELECT id, mentorship_id, user_id, score, created_at
		FROM mentorship_evaluations WHERE mentorship_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, mentorshipID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Evaluation
	for rows.Next() {
		var e entity.Evaluation
		if err := rows.Scan(&e.ID, &e.MentorshipID, &e.UserID, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
