package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo implementación del puerto CommentRepository sobre PostgreSQL.
type CommentRepo struct {
	q Querier
}

// NewCommentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommentRepository(q Querier) *CommentRepo {
	return &CommentRepo{q: q}
}

const commentColumns = `id, post_id, membership_id, content, created_at, updated_at`

// Create persiste un comentario.
func (r *CommentRepo) Create(comment *entity.Comment) error {
	query := `
		INSERT INTO comments (` + commentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		comment.ID, comment.PostID, comment.MembershipID, comment.Content,
		comment.CreatedAt, comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID obtiene un comentario por ID.
func (r *CommentRepo) GetByID(id string) (*entity.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	var c entity.Comment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.PostID, &c.MembershipID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

// Update actualiza el contenido del comentario.
func (r *CommentRepo) Update(comment *entity.Comment) error {
	query := `UPDATE comments SET content = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, comment.ID, comment.Content, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// ListByPost devuelve los comentarios del post en orden cronológico.
func (r *CommentRepo) ListByPost(postID string, limit, offset int) ([]*entity.Comment, error) {
	query := `
		SELECT ` + commentColumns + ` FROM comments
		WHERE post_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Comment
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.MembershipID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un comentario por ID.
func (r *CommentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// DeleteByPost elimina los comentarios del post (cascada de borrado del post).
func (r *CommentRepo) DeleteByPost(postID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM comments WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("delete comments by post: %w", err)
	}
	return nil
}

// DeleteByGroup elimina los comentarios de todos los posts del grupo (cascada
// de borrado del grupo).
func (r *CommentRepo) DeleteByGroup(groupID string) error {
	query := `
		DELETE FROM comments
		WHERE post_id IN (SELECT id FROM posts WHERE group_id = $1)`
	_, err := r.q.Exec(context.Background(), query, groupID)
	if err != nil {
		return fmt.Errorf("delete comments by group: %w", err)
	}
	return nil
}

// DeleteByMembership elimina los comentarios autorados por la membresía
// (cascada al salir del grupo).
func (r *CommentRepo) DeleteByMembership(membershipID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM comments WHERE membership_id = $1`, membershipID)
	if err != nil {
		return fmt.Errorf("delete comments by membership: %w", err)
	}
	return nil
}
