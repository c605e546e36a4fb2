package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/application/usecase"
)

// UserHandler maneja usuarios, perfiles y las operaciones admin sobre cuentas.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetProfile godoc
// @Summary      Obtener perfil propio
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.uc.GetProfile(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil propio
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "bio, photo_url, display_name"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	profile, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// SetMentor godoc
// @Summary      Activar o desactivar la elegibilidad como mentor
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetMentorRequest  true  "eligible"
// @Success      200   {object}  dto.UserResponse
// @Security     BearerAuth
// @Router       /api/profile/mentor [put]
func (h *UserHandler) SetMentor(c *fiber.Ctx) error {
	var in dto.SetMentorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.SetMentorEligible(GetUserID(c), in.Eligible)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// List godoc
// @Summary      Listar usuarios (admin)
// @Tags         admin
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.UserResponse
// @Security     BearerAuth
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	users, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// SetAccountStatus godoc
// @Summary      Moderar el estado de una cuenta (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "User ID"
// @Param        body  body  dto.SetAccountStatusRequest  true  "status"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/users/{id}/status [put]
func (h *UserHandler) SetAccountStatus(c *fiber.Ctx) error {
	var in dto.SetAccountStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.SetAccountStatus(c.Params("id"), GetUserID(c), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// SetLevel godoc
// @Summary      Cambiar el nivel de autorización de una cuenta (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "User ID"
// @Param        body  body  dto.SetLevelRequest  true  "level"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/users/{id}/level [put]
func (h *UserHandler) SetLevel(c *fiber.Ctx) error {
	var in dto.SetLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.SetLevel(c.Params("id"), GetUserID(c), in.Level)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
