package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
)

// respondError traduce los errores centinela del dominio a estados HTTP.
// Cualquier error no reconocido responde 500 sin filtrar detalle interno.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrMembershipNotFound),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrMentorshipNotFound),
		errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})

	case errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrSelfReport),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})

	case errors.Is(err, domain.ErrNotAMember),
		errors.Is(err, domain.ErrInsufficientRole),
		errors.Is(err, domain.ErrMemberSuspended),
		errors.Is(err, domain.ErrOwnerCannotLeave),
		errors.Is(err, domain.ErrNotParticipant),
		errors.Is(err, domain.ErrNotMentor),
		errors.Is(err, domain.ErrAccountDisabled),
		errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})

	case errors.Is(err, domain.ErrLoginExists),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrAlreadyEvaluated),
		errors.Is(err, domain.ErrNotConcluded),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
