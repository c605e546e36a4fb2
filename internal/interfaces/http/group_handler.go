package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/application/usecase"
)

// GroupHandler maneja el ciclo de vida de grupos y membresías.
type GroupHandler struct {
	uc *usecase.GroupUseCase
}

// NewGroupHandler construye el handler de grupos.
func NewGroupHandler(uc *usecase.GroupUseCase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

// Create godoc
// @Summary      Crear grupo
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGroupRequest  true  "name, description"
// @Success      201   {object}  dto.GroupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups [post]
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	group, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// Search godoc
// @Summary      Buscar grupos por nombre, ordenados por cantidad de miembros
// @Tags         groups
// @Produce      json
// @Param        q       query  string  false  "Filtro por nombre"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.GroupResponse
// @Security     BearerAuth
// @Router       /api/groups [get]
func (h *GroupHandler) Search(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	groups, err := h.uc.Search(GetUserID(c), c.Query("q"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(groups)
}

// ListMine godoc
// @Summary      Listar los grupos del usuario autenticado
// @Tags         groups
// @Produce      json
// @Success      200  {array}  dto.GroupResponse
// @Security     BearerAuth
// @Router       /api/groups/mine [get]
func (h *GroupHandler) ListMine(c *fiber.Ctx) error {
	groups, err := h.uc.ListForUser(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(groups)
}

// GetByID godoc
// @Summary      Obtener grupo por ID
// @Tags         groups
// @Produce      json
// @Param        id  path  string  true  "Group ID"
// @Success      200  {object}  dto.GroupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups/{id} [get]
func (h *GroupHandler) GetByID(c *fiber.Ctx) error {
	group, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(group)
}

// Update godoc
// @Summary      Renombrar, describir o abrir/cerrar un grupo (solo owner)
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Group ID"
// @Param        body  body  dto.UpdateGroupRequest  true  "name, description, active (parciales)"
// @Success      200   {object}  dto.GroupResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups/{id} [put]
func (h *GroupHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	groupID := c.Params("id")
	actorID := GetUserID(c)
	if in.Name != nil {
		if err := h.uc.Rename(groupID, actorID, *in.Name); err != nil {
			return respondError(c, err)
		}
	}
	if in.Description != nil {
		if err := h.uc.ChangeDescription(groupID, actorID, *in.Description); err != nil {
			return respondError(c, err)
		}
	}
	if in.Active != nil {
		if err := h.uc.SetActive(groupID, actorID, *in.Active); err != nil {
			return respondError(c, err)
		}
	}
	group, err := h.uc.GetByID(groupID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(group)
}

// Delete godoc
// @Summary      Eliminar grupo en cascada (solo owner)
// @Tags         groups
// @Param        id  path  string  true  "Group ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups/{id} [delete]
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Join godoc
// @Summary      Unirse a un grupo
// @Tags         groups
// @Produce      json
// @Param        id  path  string  true  "Group ID"
// @Success      201  {object}  dto.MembershipResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups/{id}/join [post]
func (h *GroupHandler) Join(c *fiber.Ctx) error {
	membership, err := h.uc.Join(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(membership)
}

// Leave godoc
// @Summary      Abandonar un grupo (owner no puede; borra el contenido propio del grupo)
// @Tags         groups
// @Param        id  path  string  true  "Group ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups/{id}/leave [post]
func (h *GroupHandler) Leave(c *fiber.Ctx) error {
	if err := h.uc.Leave(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMembers godoc
// @Summary      Listar los miembros de un grupo
// @Tags         groups
// @Produce      json
// @Param        id  path  string  true  "Group ID"
// @Success      200  {array}  dto.MembershipResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups/{id}/members [get]
func (h *GroupHandler) ListMembers(c *fiber.Ctx) error {
	members, err := h.uc.ListMembers(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(members)
}

// ModerateMember godoc
// @Summary      Moderar el estado de un miembro (moderator u owner)
// @Tags         groups
// @Accept       json
// @Param        id            path  string                    true  "Group ID"
// @Param        membershipID  path  string                    true  "Membership ID"
// @Param        body          body  dto.ModerateMemberRequest true  "status"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups/{id}/members/{membershipID} [put]
func (h *GroupHandler) ModerateMember(c *fiber.Ctx) error {
	var in dto.ModerateMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ModerateMember(c.Params("id"), c.Params("membershipID"), in.Status, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ChangeMemberRole godoc
// @Summary      Cambiar el rol de un miembro; owner transfiere la propiedad (solo owner)
// @Tags         groups
// @Accept       json
// @Param        id            path  string                       true  "Group ID"
// @Param        membershipID  path  string                       true  "Membership ID"
// @Param        body          body  dto.ChangeMemberRoleRequest  true  "role"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/groups/{id}/members/{membershipID}/role [put]
func (h *GroupHandler) ChangeMemberRole(c *fiber.Ctx) error {
	var in dto.ChangeMemberRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangeMemberRole(c.Context(), c.Params("id"), c.Params("membershipID"), in.Role, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
