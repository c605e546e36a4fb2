package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

var _ repository.PostRepository = (*PostRepo)(nil)

// PostRepo implementación del puerto PostRepository sobre PostgreSQL.
type PostRepo struct {
	q Querier
}

// NewPostRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPostRepository(q Querier) *PostRepo {
	return &PostRepo{q: q}
}

const postColumns = `id, group_id, membership_id, content, created_at, updated_at`

// Create persiste una publicación.
func (r *PostRepo) Create(post *entity.Post) error {
	query := `
		INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		post.ID, post.GroupID, post.MembershipID, post.Content, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID obtiene una publicación por ID.
func (r *PostRepo) GetByID(id string) (*entity.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	var p entity.Post
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.GroupID, &p.MembershipID, &p.Content, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &p, nil
}

// Update actualiza el contenido de la publicación.
func (r *PostRepo) Update(post *entity.Post) error {
	query := `UPDATE posts SET content = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, post.ID, post.Content, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// ListByGroup devuelve el feed del grupo, más recientes primero.
func (r *PostRepo) ListByGroup(groupID string, limit, offset int) ([]*entity.Post, error) {
	query := `
		SELECT ` + postColumns + ` FROM posts
		WHERE group_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, groupID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Post
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.GroupID, &p.MembershipID, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una publicación por ID.
func (r *PostRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// DeleteByGroup elimina todas las publicaciones del grupo (cascada de borrado).
func (r *PostRepo) DeleteByGroup(groupID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM posts WHERE group_id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("delete posts by group: %w", err)
	}
	return nil
}

// DeleteByMembership elimina las publicaciones autoradas por la membresía
// (cascada al salir del grupo).
func (r *PostRepo) DeleteByMembership(membershipID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM posts WHERE membership_id = $1`, membershipID)
	if err != nil {
		return fmt.Errorf("delete posts by membership: %w", err)
	}
	return nil
}
