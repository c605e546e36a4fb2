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

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación del puerto MembershipRepository sobre PostgreSQL.
// La tabla tiene constraint único sobre (user_id, group_id): dos joins
// simultáneos del mismo par nunca producen filas duplicadas.
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

const membershipColumns = `id, group_id, user_id, tag, name, role, status, joined_at`

// Create persiste una membresía. Devuelve ErrAlreadyMember si ya existe la
// fila para el par (user, group).
func (r *MembershipRepo) Create(m *entity.Membership) error {
	query := `
		INSERT INTO memberships (` + membershipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.GroupID, m.UserID, m.Tag, m.Name, string(m.Role), m.Status, m.JoinedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// GetByID obtiene una membresía por ID.
func (r *MembershipRepo) GetByID(id string) (*entity.Membership, error) {
	return r.getOne(`SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id)
}

// GetByUserAndGroup obtiene la membresía única del par (user, group).
func (r *MembershipRepo) GetByUserAndGroup(userID, groupID string) (*entity.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE user_id = $1 AND group_id = $2`
	var m entity.Membership
	var role string
	err := r.q.QueryRow(context.Background(), query, userID, groupID).Scan(
		&m.ID, &m.GroupID, &m.UserID, &m.Tag, &m.Name, &role, &m.Status, &m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership by user and group: %w", err)
	}
	m.Role = entity.Role(role)
	return &m, nil
}

func (r *MembershipRepo) getOne(query string, arg any) (*entity.Membership, error) {
	var m entity.Membership
	var role string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.GroupID, &m.UserID, &m.Tag, &m.Name, &role, &m.Status, &m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	m.Role = entity.Role(role)
	return &m, nil
}

// ListByGroup devuelve las membresías del grupo.
func (r *MembershipRepo) ListByGroup(groupID string) ([]*entity.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE group_id = $1 ORDER BY joined_at ASC`
	rows, err := r.q.Query(context.Background(), query, groupID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		var role string
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Tag, &m.Name, &role, &m.Status, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		m.Role = entity.Role(role)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de acceso de la membresía.
func (r *MembershipRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE memberships SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update membership status: %w", err)
	}
	return nil
}

// UpdateRole cambia el rol de la membresía (transferencia de grupo, promoción a moderator).
func (r *MembershipRepo) UpdateRole(id string, role entity.Role) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE memberships SET role = $2 WHERE id = $1`, id, string(role))
	if err != nil {
		return fmt.Errorf("update membership role: %w", err)
	}
	return nil
}

// Delete elimina una membresía por ID.
func (r *MembershipRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	return nil
}

// DeleteByGroup elimina todas las membresías del grupo (cascada de borrado).
func (r *MembershipRepo) DeleteByGroup(groupID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM memberships WHERE group_id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("delete memberships by group: %w", err)
	}
	return nil
}

// CountByGroup devuelve la cantidad de miembros del grupo.
func (r *MembershipRepo) CountByGroup(groupID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM memberships WHERE group_id = $1`, groupID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count memberships: %w", err)
	}
	return count, nil
}
