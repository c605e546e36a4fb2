package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/application/usecase"
)

// ContentHandler maneja publicaciones y comentarios.
type ContentHandler struct {
	uc *usecase.ContentUseCase
}

// NewContentHandler construye el handler de contenido.
func NewContentHandler(uc *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// CreatePost godoc
// @Summary      Publicar en un grupo (requiere membresía)
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Group ID"
// @Param        body  body  dto.CreatePostRequest  true  "content"
// @Success      201   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups/{id}/posts [post]
func (h *ContentHandler) CreatePost(c *fiber.Ctx) error {
	var in dto.CreatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	post, err := h.uc.CreatePost(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// ListPosts godoc
// @Summary      Listar las publicaciones de un grupo (más recientes primero)
// @Tags         content
// @Produce      json
// @Param        id      path   string  true   "Group ID"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.PostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups/{id}/posts [get]
func (h *ContentHandler) ListPosts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	posts, err := h.uc.ListPostsByGroup(c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// EditPost godoc
// @Summary      Editar una publicación propia
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Post ID"
// @Param        body  body  dto.EditContentRequest  true  "content"
// @Success      200   {object}  dto.PostResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/posts/{id} [put]
func (h *ContentHandler) EditPost(c *fiber.Ctx) error {
	var in dto.EditContentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	post, err := h.uc.EditPost(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost godoc
// @Summary      Eliminar una publicación (autor, moderator u owner)
// @Tags         content
// @Param        id  path  string  true  "Post ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/posts/{id} [delete]
func (h *ContentHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.uc.DeletePost(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateComment godoc
// @Summary      Comentar una publicación (requiere membresía en el grupo)
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Post ID"
// @Param        body  body  dto.CreateCommentRequest  true  "content"
// @Success      201   {object}  dto.CommentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/posts/{id}/comments [post]
func (h *ContentHandler) CreateComment(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	comment, err := h.uc.CreateComment(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListComments godoc
// @Summary      Listar los comentarios de una publicación (orden cronológico)
// @Tags         content
// @Produce      json
// @Param        id      path   string  true   "Post ID"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.CommentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/posts/{id}/comments [get]
func (h *ContentHandler) ListComments(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	comments, err := h.uc.ListCommentsByPost(c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// EditComment godoc
// @Summary      Editar un comentario propio
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Comment ID"
// @Param        body  body  dto.EditContentRequest  true  "content"
// @Success      200   {object}  dto.CommentResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/comments/{id} [put]
func (h *ContentHandler) EditComment(c *fiber.Ctx) error {
	var in dto.EditContentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	comment, err := h.uc.EditComment(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment godoc
// @Summary      Eliminar un comentario (autor, moderator u owner)
// @Tags         content
// @Param        id  path  string  true  "Comment ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/comments/{id} [delete]
func (h *ContentHandler) DeleteComment(c *fiber.Ctx) error {
	if err := h.uc.DeleteComment(c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
