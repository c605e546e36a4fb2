package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/application/usecase"
)

// NotificationHandler maneja las notificaciones del usuario autenticado.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler de notificaciones.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificaciones propias (más recientes primero)
// @Tags         notifications
// @Produce      json
// @Param        unread  query  bool  false  "Solo no leídas"
// @Param        limit   query  int   false  "Límite"
// @Param        offset  query  int   false  "Desplazamiento"
// @Success      200  {array}  dto.NotificationResponse
// @Security     BearerAuth
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	notifications, err := h.uc.ListForUser(GetUserID(c), c.QueryBool("unread"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notifications)
}

// UnreadCount godoc
// @Summary      Contar notificaciones no leídas
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  dto.UnreadCountResponse
// @Security     BearerAuth
// @Router       /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.uc.UnreadCount(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UnreadCountResponse{Unread: count})
}

// MarkRead godoc
// @Summary      Marcar una notificación como leída (solo el destinatario)
// @Tags         notifications
// @Param        id  path  string  true  "Notification ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead godoc
// @Summary      Marcar todas las notificaciones como leídas
// @Tags         notifications
// @Success      204
// @Security     BearerAuth
// @Router       /api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAllRead(GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
