package dto

import "time"

// CreatePostRequest entrada para publicar en un grupo.
type CreatePostRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// EditContentRequest entrada para editar una publicación o comentario propio.
type EditContentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// PostResponse salida de una publicación.
type PostResponse struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"group_id"`
	MembershipID string    `json:"membership_id"`
	AuthorTag    string    `json:"author_tag,omitempty"`
	AuthorName   string    `json:"author_name,omitempty"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCommentRequest entrada para comentar una publicación.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// CommentResponse salida de un comentario.
type CommentResponse struct {
	ID           string    `json:"id"`
	PostID       string    `json:"post_id"`
	MembershipID string    `json:"membership_id"`
	AuthorTag    string    `json:"author_tag,omitempty"`
	AuthorName   string    `json:"author_name,omitempty"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
