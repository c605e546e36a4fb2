package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/application/usecase"
)

// ReportHandler maneja denuncias de usuarios.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler de denuncias.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Create godoc
// @Summary      Denunciar a otro usuario
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReportRequest  true  "reported_id, category, description"
// @Success      201   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	report, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// List godoc
// @Summary      Listar denuncias (admin)
// @Tags         admin
// @Produce      json
// @Param        status  query  string  false  "pending o resolved"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.ReportResponse
// @Security     BearerAuth
// @Router       /api/admin/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	reports, err := h.uc.List(c.Query("status"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reports)
}

// ListByReported godoc
// @Summary      Listar las denuncias contra un usuario (admin)
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {array}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/users/{id}/reports [get]
func (h *ReportHandler) ListByReported(c *fiber.Ctx) error {
	reports, err := h.uc.ListByReported(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reports)
}

// Resolve godoc
// @Summary      Resolver una denuncia pendiente (admin)
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Report ID"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/reports/{id}/resolve [put]
func (h *ReportHandler) Resolve(c *fiber.Ctx) error {
	report, err := h.uc.Resolve(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
