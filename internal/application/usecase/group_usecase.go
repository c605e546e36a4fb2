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

// GroupUseCase ciclo de vida de grupos: crear, renombrar, abrir/cerrar,
// borrar, unirse, salir y moderar miembros.
type GroupUseCase struct {
	groupRepo  repository.GroupRepository
	memberRepo repository.MembershipRepository
	userRepo   repository.UserRepository
	engine     *authz.Engine
	tx         GroupsTxRunner
	notifier   *NotificationUseCase
}

// NewGroupUseCase construye el caso de uso con sus puertos. notifier puede ser
// nil (por ejemplo en tests que no verifican notificaciones).
func NewGroupUseCase(
	groupRepo repository.GroupRepository,
	memberRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	engine *authz.Engine,
	tx GroupsTxRunner,
	notifier *NotificationUseCase,
) *GroupUseCase {
	return &GroupUseCase{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		engine:     engine,
		tx:         tx,
		notifier:   notifier,
	}
}

// Create crea el grupo activo y la membresía owner del creador en una sola
// transacción: o persisten ambos o ninguno. Tag y Name se desnormalizan del
// usuario al momento de la creación.
func (uc *GroupUseCase) Create(ctx context.Context, creatorID string, in dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	creator, err := uc.userRepo.GetByID(creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	group := &entity.Group{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	owner := &entity.Membership{
		ID:       uuid.New().String(),
		GroupID:  group.ID,
		UserID:   creator.ID,
		Tag:      creator.Login,
		Name:     creator.Name,
		Role:     entity.RoleOwner,
		Status:   entity.MemberNormal,
		JoinedAt: now,
	}
	err = uc.tx.RunGroups(ctx, func(groups repository.GroupRepository, members repository.MembershipRepository, _ repository.PostRepository, _ repository.CommentRepository) error {
		if err := groups.Create(group); err != nil {
			return err
		}
		return members.Create(owner)
	})
	if err != nil {
		return nil, err
	}
	return toGroupResponse(group, 1), nil
}

// GetByID obtiene un grupo con su cantidad de miembros.
func (uc *GroupUseCase) GetByID(id string) (*dto.GroupResponse, error) {
	group, err := uc.groupRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrGroupNotFound
	}
	count, err := uc.memberRepo.CountByGroup(id)
	if err != nil {
		return nil, err
	}
	return toGroupResponse(group, count), nil
}

// Join incorpora al usuario como miembro standard. Falla con ErrGroupNotFound
// o ErrUserNotFound si algún id no resuelve, ErrConflict si el grupo está
// cerrado y ErrAlreadyMember si ya existe la membresía (el constraint único de
// (user, group) cubre también la carrera entre dos joins simultáneos).
func (uc *GroupUseCase) Join(groupID, userID string) (*dto.MembershipResponse, error) {
	group, err := uc.groupRepo.GetByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrGroupNotFound
	}
	if !group.Active {
		return nil, domain.ErrConflict
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	existing, err := uc.memberRepo.GetByUserAndGroup(userID, groupID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyMember
	}
	m := &entity.Membership{
		ID:       uuid.New().String(),
		GroupID:  groupID,
		UserID:   userID,
		Tag:      user.Login,
		Name:     user.Name,
		Role:     entity.RoleStandard,
		Status:   entity.MemberNormal,
		JoinedAt: time.Now(),
	}
	if err := uc.memberRepo.Create(m); err != nil {
		return nil, err
	}
	return toMembershipResponse(m), nil
}

// Leave saca al usuario del grupo. El owner no puede salir sin transferir
// antes el grupo. La salida borra, en una sola transacción, los comentarios y
// posts autorados por ESTA membresía (contenido del mismo usuario en otros
// grupos queda intacto) y después la membresía.
func (uc *GroupUseCase) Leave(ctx context.Context, groupID, userID string) error {
	m, err := uc.memberRepo.GetByUserAndGroup(userID, groupID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotAMember
	}
	if m.Role == entity.RoleOwner {
		return domain.ErrOwnerCannotLeave
	}
	return uc.tx.RunGroups(ctx, func(_ repository.GroupRepository, members repository.MembershipRepository, posts repository.PostRepository, comments repository.CommentRepository) error {
		if err := comments.DeleteByMembership(m.ID); err != nil {
			return err
		}
		if err := posts.DeleteByMembership(m.ID); err != nil {
			return err
		}
		return members.Delete(m.ID)
	})
}

// Rename cambia el nombre del grupo. Solo el owner.
func (uc *GroupUseCase) Rename(groupID, actorID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.updateField(groupID, actorID, func(g *entity.Group) { g.Name = name })
}

// ChangeDescription cambia la descripción del grupo. Solo el owner.
func (uc *GroupUseCase) ChangeDescription(groupID, actorID, description string) error {
	return uc.updateField(groupID, actorID, func(g *entity.Group) { g.Description = strings.TrimSpace(description) })
}

// SetActive abre o cierra el grupo. Solo el owner. Un grupo cerrado no acepta
// nuevos miembros.
func (uc *GroupUseCase) SetActive(groupID, actorID string, active bool) error {
	return uc.updateField(groupID, actorID, func(g *entity.Group) { g.Active = active })
}

func (uc *GroupUseCase) updateField(groupID, actorID string, mutate func(*entity.Group)) error {
	group, err := uc.groupRepo.GetByID(groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrGroupNotFound
	}
	if _, err := uc.engine.RequireRole(actorID, groupID, entity.RoleOwner); err != nil {
		return err
	}
	mutate(group)
	group.UpdatedAt = time.Now()
	return uc.groupRepo.Update(group)
}

// Delete borra el grupo con cascada completa en una sola transacción, en orden
// de dependencias: comentarios -> posts -> membresías -> grupo. Solo el owner.
func (uc *GroupUseCase) Delete(ctx context.Context, groupID, actorID string) error {
	group, err := uc.groupRepo.GetByID(groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrGroupNotFound
	}
	if _, err := uc.engine.RequireRole(actorID, groupID, entity.RoleOwner); err != nil {
		return err
	}
	return uc.tx.RunGroups(ctx, func(groups repository.GroupRepository, members repository.MembershipRepository, posts repository.PostRepository, comments repository.CommentRepository) error {
		if err := comments.DeleteByGroup(groupID); err != nil {
			return err
		}
		if err := posts.DeleteByGroup(groupID); err != nil {
			return err
		}
		if err := members.DeleteByGroup(groupID); err != nil {
			return err
		}
		return groups.Delete(groupID)
	})
}

// ModerateMember cambia el estado de acceso de una membresía. Requiere rol
// moderator y que el rol del objetivo sea estrictamente menor al del actor:
// un moderator no puede suspender a otro moderator ni al owner, y nadie se
// modera a sí mismo.
func (uc *GroupUseCase) ModerateMember(groupID, membershipID, newStatus, actorID string) error {
	switch newStatus {
	case entity.MemberNormal, entity.MemberSuspended, entity.MemberBanned:
	default:
		return domain.ErrInvalidInput
	}
	actor, err := uc.engine.RequireRole(actorID, groupID, entity.RoleModerator)
	if err != nil {
		return err
	}
	target, err := uc.memberRepo.GetByID(membershipID)
	if err != nil {
		return err
	}
	if target == nil || target.GroupID != groupID {
		return domain.ErrMembershipNotFound
	}
	if target.UserID == actorID {
		return domain.ErrForbidden
	}
	if target.Role.Level() >= actor.Role.Level() {
		return domain.ErrInsufficientRole
	}
	if err := uc.memberRepo.UpdateStatus(target.ID, newStatus); err != nil {
		return err
	}
	if uc.notifier != nil {
		group, err := uc.groupRepo.GetByID(groupID)
		if err == nil && group != nil {
			_, _ = uc.notifier.Send(actorID, target.UserID,
				"Tu acceso al grupo \""+group.Name+"\" ahora es: "+newStatus)
		}
	}
	return nil
}

// ChangeMemberRole cambia el rol de una membresía. Solo el owner. Promover a
// owner transfiere la propiedad del grupo: el owner actual queda como
// moderator en la misma transacción, de modo que el grupo tiene siempre
// exactamente un owner y el anterior queda habilitado para salir.
func (uc *GroupUseCase) ChangeMemberRole(ctx context.Context, groupID, membershipID, newRole, actorID string) error {
	role := entity.Role(newRole)
	if !role.Valid() {
		return domain.ErrInvalidInput
	}
	actor, err := uc.engine.RequireRole(actorID, groupID, entity.RoleOwner)
	if err != nil {
		return err
	}
	target, err := uc.memberRepo.GetByID(membershipID)
	if err != nil {
		return err
	}
	if target == nil || target.GroupID != groupID {
		return domain.ErrMembershipNotFound
	}
	if target.ID == actor.ID {
		return domain.ErrForbidden
	}
	err = uc.tx.RunGroups(ctx, func(_ repository.GroupRepository, members repository.MembershipRepository, _ repository.PostRepository, _ repository.CommentRepository) error {
		if err := members.UpdateRole(target.ID, role); err != nil {
			return err
		}
		if role == entity.RoleOwner {
			return members.UpdateRole(actor.ID, entity.RoleModerator)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if uc.notifier != nil {
		group, err := uc.groupRepo.GetByID(groupID)
		if err == nil && group != nil {
			_, _ = uc.notifier.Send(actorID, target.UserID,
				"Tu rol en el grupo \""+group.Name+"\" ahora es: "+newRole)
		}
	}
	return nil
}

// ListForUser devuelve los grupos donde el usuario tiene membresía.
func (uc *GroupUseCase) ListForUser(userID string) ([]*dto.GroupResponse, error) {
	groups, err := uc.groupRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toGroupResponse(g, 0))
	}
	return out, nil
}

// Search busca grupos por substring case-insensitive en el nombre (query vacío
// lista todos), excluye los grupos a los que el solicitante ya pertenece y
// devuelve el resto ordenado por cantidad de miembros descendente.
func (uc *GroupUseCase) Search(requesterID, query string, page dto.PageRequest) ([]*dto.GroupResponse, error) {
	page.DefaultPage()
	found, err := uc.groupRepo.Search(query, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	mine, err := uc.groupRepo.ListByUser(requesterID)
	if err != nil {
		return nil, err
	}
	member := make(map[string]bool, len(mine))
	for _, g := range mine {
		member[g.ID] = true
	}
	out := make([]*dto.GroupResponse, 0, len(found))
	for _, g := range found {
		if member[g.ID] {
			continue
		}
		out = append(out, toGroupResponse(&g.Group, g.MemberCount))
	}
	return out, nil
}

// ListMembers devuelve las membresías del grupo. Lectura: no pasa por el motor
// de autorización.
func (uc *GroupUseCase) ListMembers(groupID string) ([]*dto.MembershipResponse, error) {
	group, err := uc.groupRepo.GetByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrGroupNotFound
	}
	members, err := uc.memberRepo.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MembershipResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toMembershipResponse(m))
	}
	return out, nil
}

func toGroupResponse(g *entity.Group, memberCount int) *dto.GroupResponse {
	if g == nil {
		return nil
	}
	return &dto.GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Active:      g.Active,
		MemberCount: memberCount,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toMembershipResponse(m *entity.Membership) *dto.MembershipResponse {
	if m == nil {
		return nil
	}
	return &dto.MembershipResponse{
		ID:       m.ID,
		GroupID:  m.GroupID,
		UserID:   m.UserID,
		Tag:      m.Tag,
		Name:     m.Name,
		Role:     string(m.Role),
		Status:   m.Status,
		JoinedAt: m.JoinedAt,
	}
}
