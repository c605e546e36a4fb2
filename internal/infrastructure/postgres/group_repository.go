package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

var _ repository.GroupRepository = (*GroupRepo)(nil)

// GroupRepo implementación del puerto GroupRepository sobre PostgreSQL.
type GroupRepo struct {
	q Querier
}

// NewGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGroupRepository(q Querier) *GroupRepo {
	return &GroupRepo{q: q}
}

const groupColumns = `id, name, description, active, created_at, updated_at`

// Create persiste un nuevo grupo.
func (r *GroupRepo) Create(group *entity.Group) error {
	query := `
		INSERT INTO groups (` + groupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		group.ID, group.Name, group.Description, group.Active, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID.
func (r *GroupRepo) GetByID(id string) (*entity.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`
	var g entity.Group
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Name, &g.Description, &g.Active, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &g, nil
}

// Update actualiza nombre, descripción y estado del grupo.
func (r *GroupRepo) Update(group *entity.Group) error {
	query := `
		UPDATE groups SET name = $2, description = $3, active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		group.ID, group.Name, group.Description, group.Active, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	return nil
}

// Search busca por substring case-insensitive en el nombre (query vacío lista
// todos), ordenado por cantidad de miembros descendente con desempate estable
// por nombre e id.
func (r *GroupRepo) Search(query string, limit, offset int) ([]*entity.GroupWithCount, error) {
	sql := `
		SELECT g.id, g.name, g.description, g.active, g.created_at, g.updated_at,
			COUNT(m.id) AS member_count
		FROM groups g
		LEFT JOIN memberships m ON m.group_id = g.id
		WHERE $1 = '' OR g.name ILIKE '%' || $1 || '%'
		GROUP BY g.id
		ORDER BY member_count DESC, g.name ASC, g.id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), sql, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.GroupWithCount
	for rows.Next() {
		var g entity.GroupWithCount
		if err := rows.Scan(
			&g.ID, &g.Name, &g.Description, &g.Active, &g.CreatedAt, &g.UpdatedAt,
			&g.MemberCount,
		); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// ListByUser devuelve los grupos donde el usuario tiene membresía.
func (r *GroupRepo) ListByUser(userID string) ([]*entity.Group, error) {
	query := `
		SELECT g.id, g.name, g.description, g.active, g.created_at, g.updated_at
		FROM groups g
		JOIN memberships m ON m.group_id = g.id
		WHERE m.user_id = $1
		ORDER BY g.name ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list groups by user: %w", err)
	}
	defer rows.Close()
	var list []*entity.Group
	for rows.Next() {
		var g entity.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Active, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Delete elimina la fila del grupo. La cascada completa la orquesta el TxRunner.
func (r *GroupRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}
