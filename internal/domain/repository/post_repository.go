package repository

import "github.com/tu-usuario/mentoria-pro/internal/domain/entity"

// PostRepository define el puerto de persistencia para Post (DIP).
type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	Update(post *entity.Post) error
	// ListByGroup devuelve las publicaciones del grupo, más recientes primero.
	ListByGroup(groupID string, limit, offset int) ([]*entity.Post, error)
	Delete(id string) error
	DeleteByGroup(groupID string) error
	DeleteByMembership(membershipID string) error
}

// CommentRepository define el puerto de persistencia para Comment.
type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	Update(comment *entity.Comment) error
	// ListByPost devuelve los comentarios del post en orden cronológico.
	ListByPost(postID string, limit, offset int) ([]*entity.Comment, error)
	Delete(id string) error
	DeleteByPost(postID string) error
	DeleteByGroup(groupID string) error
	DeleteByMembership(membershipID string) error
}
