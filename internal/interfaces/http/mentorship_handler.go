package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/application/usecase"
)

// MentorshipHandler maneja mentorías, diálogos y evaluaciones.
type MentorshipHandler struct {
	uc *usecase.MentorshipUseCase
}

// NewMentorshipHandler construye el handler de mentorías.
func NewMentorshipHandler(uc *usecase.MentorshipUseCase) *MentorshipHandler {
	return &MentorshipHandler{uc: uc}
}

// Solicit godoc
// @Summary      Solicitar una mentoría a un mentor elegible
// @Tags         mentorships
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SolicitMentorshipRequest  true  "mentor_id, name, starts_at, ends_at"
// @Success      201   {object}  dto.MentorshipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/mentorships/solicit [post]
func (h *MentorshipHandler) Solicit(c *fiber.Ctx) error {
	var in dto.SolicitMentorshipRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mentorship, err := h.uc.Solicit(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mentorship)
}

// Offer godoc
// @Summary      Publicar una sesión de mentoría (solo mentores elegibles)
// @Tags         mentorships
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OfferMentorshipRequest  true  "name, starts_at, ends_at"
// @Success      201   {object}  dto.MentorshipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/mentorships/offer [post]
func (h *MentorshipHandler) Offer(c *fiber.Ctx) error {
	var in dto.OfferMentorshipRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mentorship, err := h.uc.Offer(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mentorship)
}

// ListMine godoc
// @Summary      Listar las mentorías donde participo
// @Tags         mentorships
// @Produce      json
// @Success      200  {array}  dto.MentorshipResponse
// @Security     BearerAuth
// @Router       /api/mentorships [get]
func (h *MentorshipHandler) ListMine(c *fiber.Ctx) error {
	mentorships, err := h.uc.ListForUser(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mentorships)
}

// ListOffered godoc
// @Summary      Listar las sesiones publicadas a la espera de mentorado
// @Tags         mentorships
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.MentorshipResponse
// @Security     BearerAuth
// @Router       /api/mentorships/offered [get]
func (h *MentorshipHandler) ListOffered(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	mentorships, err := h.uc.ListOffered(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mentorships)
}

// Accept godoc
// @Summary      Aceptar una mentoría (el mentor acepta solicitudes; un mentorado toma ofertas)
// @Tags         mentorships
// @Produce      json
// @Param        id  path  string  true  "Mentorship ID"
// @Success      200  {object}  dto.MentorshipResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/mentorships/{id}/accept [post]
func (h *MentorshipHandler) Accept(c *fiber.Ctx) error {
	mentorship, err := h.uc.Accept(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mentorship)
}

// Finalize godoc
// @Summary      Concluir una mentoría agendada (solo el mentor)
// @Tags         mentorships
// @Produce      json
// @Param        id  path  string  true  "Mentorship ID"
// @Success      200  {object}  dto.MentorshipResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/mentorships/{id}/finalize [post]
func (h *MentorshipHandler) Finalize(c *fiber.Ctx) error {
	mentorship, err := h.uc.Finalize(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mentorship)
}

// Cancel godoc
// @Summary      Cancelar una mentoría no terminal (cualquier participante)
// @Tags         mentorships
// @Produce      json
// @Param        id  path  string  true  "Mentorship ID"
// @Success      200  {object}  dto.MentorshipResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/mentorships/{id}/cancel [post]
func (h *MentorshipHandler) Cancel(c *fiber.Ctx) error {
	mentorship, err := h.uc.Cancel(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mentorship)
}

// SendMessage godoc
// @Summary      Enviar un mensaje dentro de la mentoría (solo participantes)
// @Tags         mentorships
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Mentorship ID"
// @Param        body  body  dto.SendDialogueRequest true  "content"
// @Success      201   {object}  dto.DialogueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/mentorships/{id}/messages [post]
func (h *MentorshipHandler) SendMessage(c *fiber.Ctx) error {
	var in dto.SendDialogueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	message, err := h.uc.SendDialogue(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// ListMessages godoc
// @Summary      Listar los mensajes de la mentoría en orden cronológico (solo participantes)
// @Tags         mentorships
// @Produce      json
// @Param        id      path   string  true   "Mentorship ID"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.DialogueResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/mentorships/{id}/messages [get]
func (h *MentorshipHandler) ListMessages(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	messages, err := h.uc.ListDialogues(c.Params("id"), GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(messages)
}

// Evaluate godoc
// @Summary      Calificar una mentoría concluida (0 a 5, una vez por participante)
// @Tags         mentorships
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Mentorship ID"
// @Param        body  body  dto.EvaluateRequest  true  "score"
// @Success      201   {object}  dto.EvaluationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/mentorships/{id}/evaluations [post]
func (h *MentorshipHandler) Evaluate(c *fiber.Ctx) error {
	var in dto.EvaluateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	evaluation, err := h.uc.Evaluate(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(evaluation)
}

// ListEvaluations godoc
// @Summary      Listar las calificaciones de una mentoría (solo participantes)
// @Tags         mentorships
// @Produce      json
// @Param        id  path  string  true  "Mentorship ID"
// @Success      200  {array}  dto.EvaluationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/mentorships/{id}/evaluations [get]
func (h *MentorshipHandler) ListEvaluations(c *fiber.Ctx) error {
	evaluations, err := h.uc.ListEvaluations(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(evaluations)
}
