package entity

import "time"

// Límites de contenido para publicaciones y comentarios.
const (
	PostContentMax    = 2000
	CommentContentMax = 1000
)

// Post publicación dentro de un grupo, autorada por una Membership.
// Borrar un Post elimina en cascada sus comentarios.
type Post struct {
	ID           string
	GroupID      string
	MembershipID string
	Content      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Comment comentario sobre un Post, autorado por una Membership del mismo grupo.
type Comment struct {
	ID           string
	PostID       string
	MembershipID string
	Content      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
