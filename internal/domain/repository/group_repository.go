package repository

import "github.com/tu-usuario/mentoria-pro/internal/domain/entity"

// GroupRepository define el puerto de persistencia para Group (DIP).
type GroupRepository interface {
	Create(group *entity.Group) error
	GetByID(id string) (*entity.Group, error)
	Update(group *entity.Group) error
	// Search busca por substring case-insensitive en el nombre. Query vacío
	// lista todos los grupos. Resultado ordenado por cantidad de miembros
	// descendente, con desempate por nombre ascendente e id.
	Search(query string, limit, offset int) ([]*entity.GroupWithCount, error)
	ListByUser(userID string) ([]*entity.Group, error)
	// Delete elimina solo la fila del grupo; la cascada completa vive en el TxRunner.
	Delete(id string) error
}

// MembershipRepository define el puerto de persistencia para Membership.
// La unicidad de (UserID, GroupID) la garantiza la capa de persistencia.
type MembershipRepository interface {
	Create(membership *entity.Membership) error
	GetByID(id string) (*entity.Membership, error)
	GetByUserAndGroup(userID, groupID string) (*entity.Membership, error)
	ListByGroup(groupID string) ([]*entity.Membership, error)
	UpdateStatus(id, status string) error
	UpdateRole(id string, role entity.Role) error
	Delete(id string) error
	DeleteByGroup(groupID string) error
	CountByGroup(groupID string) (int, error)
}
