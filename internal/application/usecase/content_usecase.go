package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mentoria-pro/internal/application/authz"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

// ContentUseCase publicaciones y comentarios dentro de grupos. Las reglas son
// idénticas para ambos: crear exige membresía activa en el grupo, editar exige
// autoría, borrar exige autoría o rol moderator/owner.
type ContentUseCase struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	groupRepo   repository.GroupRepository
	memberRepo  repository.MembershipRepository
	engine      *authz.Engine
	tx          GroupsTxRunner
}

// NewContentUseCase construye el caso de uso con sus puertos.
func NewContentUseCase(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	groupRepo repository.GroupRepository,
	memberRepo repository.MembershipRepository,
	engine *authz.Engine,
	tx GroupsTxRunner,
) *ContentUseCase {
	return &ContentUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		groupRepo:   groupRepo,
		memberRepo:  memberRepo,
		engine:      engine,
		tx:          tx,
	}
}

func validContent(content string, max int) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", domain.ErrEmptyContent
	}
	if len(content) > max {
		return "", domain.ErrInvalidInput
	}
	return content, nil
}

// CreatePost publica en un grupo. La autoría cuelga de la membresía del autor
// en ese grupo, no del usuario directamente.
func (uc *ContentUseCase) CreatePost(groupID, authorID string, in dto.CreatePostRequest) (*dto.PostResponse, error) {
	group, err := uc.groupRepo.GetByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrGroupNotFound
	}
	m, err := uc.engine.RequireMember(authorID, groupID)
	if err != nil {
		return nil, err
	}
	content, err := validContent(in.Content, entity.PostContentMax)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	post := &entity.Post{
		ID:           uuid.New().String(),
		GroupID:      groupID,
		MembershipID: m.ID,
		Content:      content,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.postRepo.Create(post); err != nil {
		return nil, err
	}
	return toPostResponse(post, m), nil
}

// EditPost modifica el contenido de una publicación. Solo el autor con
// membresía activa puede editar; la moderación habilita borrar, no editar.
func (uc *ContentUseCase) EditPost(postID, actorID string, in dto.EditContentRequest) (*dto.PostResponse, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	author, err := uc.engine.RequireMember(actorID, post.GroupID)
	if err != nil {
		return nil, err
	}
	if author.ID != post.MembershipID {
		return nil, domain.ErrForbidden
	}
	content, err := validContent(in.Content, entity.PostContentMax)
	if err != nil {
		return nil, err
	}
	post.Content = content
	post.UpdatedAt = time.Now()
	if err := uc.postRepo.Update(post); err != nil {
		return nil, err
	}
	return toPostResponse(post, author), nil
}

// DeletePost borra una publicación y sus comentarios en una transacción.
// Permitido para el autor o para moderator/owner del grupo del post.
func (uc *ContentUseCase) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return domain.ErrPostNotFound
	}
	m, err := uc.engine.RequireMember(requesterID, post.GroupID)
	if err != nil {
		return err
	}
	if m.ID != post.MembershipID && !m.Role.AtLeast(entity.RoleModerator) {
		return domain.ErrForbidden
	}
	return uc.tx.RunGroups(ctx, func(_ repository.GroupRepository, _ repository.MembershipRepository, posts repository.PostRepository, comments repository.CommentRepository) error {
		if err := comments.DeleteByPost(postID); err != nil {
			return err
		}
		return posts.Delete(postID)
	})
}

// ListPostsByGroup devuelve el feed del grupo, más recientes primero, con la
// autoría desnormalizada (tag y nombre de la membresía).
func (uc *ContentUseCase) ListPostsByGroup(groupID string, page dto.PageRequest) ([]*dto.PostResponse, error) {
	group, err := uc.groupRepo.GetByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrGroupNotFound
	}
	page.DefaultPage()
	posts, err := uc.postRepo.ListByGroup(groupID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	authors, err := uc.membersByID(groupID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p, authors[p.MembershipID]))
	}
	return out, nil
}

// CreateComment comenta una publicación. Exige membresía activa en el grupo
// del post.
func (uc *ContentUseCase) CreateComment(postID, authorID string, in dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	m, err := uc.engine.RequireMember(authorID, post.GroupID)
	if err != nil {
		return nil, err
	}
	content, err := validContent(in.Content, entity.CommentContentMax)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	comment := &entity.Comment{
		ID:           uuid.New().String(),
		PostID:       postID,
		MembershipID: m.ID,
		Content:      content,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return toCommentResponse(comment, m), nil
}

// EditComment modifica un comentario propio. Exige membresía activa en el
// grupo del post.
func (uc *ContentUseCase) EditComment(commentID, actorID string, in dto.EditContentRequest) (*dto.CommentResponse, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrCommentNotFound
	}
	post, err := uc.postRepo.GetByID(comment.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	author, err := uc.engine.RequireMember(actorID, post.GroupID)
	if err != nil {
		return nil, err
	}
	if author.ID != comment.MembershipID {
		return nil, domain.ErrForbidden
	}
	content, err := validContent(in.Content, entity.CommentContentMax)
	if err != nil {
		return nil, err
	}
	comment.Content = content
	comment.UpdatedAt = time.Now()
	if err := uc.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return toCommentResponse(comment, author), nil
}

// DeleteComment borra un comentario. Misma regla que DeletePost, en el grupo
// del post padre del comentario.
func (uc *ContentUseCase) DeleteComment(commentID, requesterID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return domain.ErrCommentNotFound
	}
	post, err := uc.postRepo.GetByID(comment.PostID)
	if err != nil {
		return err
	}
	if post == nil {
		return domain.ErrPostNotFound
	}
	m, err := uc.engine.RequireMember(requesterID, post.GroupID)
	if err != nil {
		return err
	}
	if m.ID != comment.MembershipID && !m.Role.AtLeast(entity.RoleModerator) {
		return domain.ErrForbidden
	}
	return uc.commentRepo.Delete(commentID)
}

// ListCommentsByPost devuelve los comentarios del post en orden cronológico.
func (uc *ContentUseCase) ListCommentsByPost(postID string, page dto.PageRequest) ([]*dto.CommentResponse, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	page.DefaultPage()
	comments, err := uc.commentRepo.ListByPost(postID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	authors, err := uc.membersByID(post.GroupID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c, authors[c.MembershipID]))
	}
	return out, nil
}

// membersByID indexa las membresías del grupo por id para resolver autorías
// sin una consulta por fila.
func (uc *ContentUseCase) membersByID(groupID string) (map[string]*entity.Membership, error) {
	members, err := uc.memberRepo.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]*entity.Membership, len(members))
	for _, m := range members {
		idx[m.ID] = m
	}
	return idx, nil
}

func toPostResponse(p *entity.Post, author *entity.Membership) *dto.PostResponse {
	if p == nil {
		return nil
	}
	out := &dto.PostResponse{
		ID:           p.ID,
		GroupID:      p.GroupID,
		MembershipID: p.MembershipID,
		Content:      p.Content,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if author != nil {
		out.AuthorTag = author.Tag
		out.AuthorName = author.Name
	}
	return out
}

func toCommentResponse(c *entity.Comment, author *entity.Membership) *dto.CommentResponse {
	if c == nil {
		return nil
	}
	out := &dto.CommentResponse{
		ID:           c.ID,
		PostID:       c.PostID,
		MembershipID: c.MembershipID,
		Content:      c.Content,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if author != nil {
		out.AuthorTag = author.Tag
		out.AuthorName = author.Name
	}
	return out
}
