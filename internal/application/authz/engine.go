// Package authz resuelve "¿el actor X tiene la capacidad Y sobre el grupo Z?"
// usando el rol de la membresía y su estado de acceso. Es el único punto de
// decisión de permisos de grupo: toda operación de escritura pasa por aquí;
// solo los listados de lectura lo omiten.
package authz

import (
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

// Engine motor de autorización. Consulta puro: no escribe nada.
type Engine struct {
	members repository.MembershipRepository
}

// NewEngine construye el motor con el puerto de membresías.
func NewEngine(members repository.MembershipRepository) *Engine {
	return &Engine{members: members}
}

// RequireRole busca la membresía única de (userID, groupID) y exige un rol mínimo.
// Falla con ErrNotAMember si no existe, ErrMemberSuspended si la membresía no
// está en estado normal, y ErrInsufficientRole si el privilegio no alcanza.
// La comparación usa el nivel explícito del rol (standard < moderator < owner),
// nunca el orden de declaración.
func (e *Engine) RequireRole(userID, groupID string, min entity.Role) (*entity.Membership, error) {
	m, err := e.members.GetByUserAndGroup(userID, groupID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotAMember
	}
	if !m.CanAct() {
		return nil, domain.ErrMemberSuspended
	}
	if !m.Role.AtLeast(min) {
		return nil, domain.ErrInsufficientRole
	}
	return m, nil
}

// RequireMember atajo para operaciones que solo exigen pertenecer al grupo.
func (e *Engine) RequireMember(userID, groupID string) (*entity.Membership, error) {
	return e.RequireRole(userID, groupID, entity.RoleStandard)
}
