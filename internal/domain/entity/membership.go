package entity

import "time"

// Role rol de una membresía dentro de un grupo.
type Role string

// Roles válidos para Membership.
const (
	RoleStandard  Role = "standard"
	RoleModerator Role = "moderator"
	RoleOwner     Role = "owner"
)

// Level devuelve el nivel de privilegio del rol. El orden es explícito y no
// depende del orden de declaración de las constantes: standard < moderator < owner.
func (r Role) Level() int {
	switch r {
	case RoleOwner:
		return 2
	case RoleModerator:
		return 1
	case RoleStandard:
		return 0
	default:
		return -1
	}
}

// AtLeast indica si el rol tiene al menos el privilegio de min.
func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level()
}

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r.Level() >= 0
}

// Estados de acceso válidos para Membership.
const (
	MemberNormal    = "normal"
	MemberSuspended = "suspended"
	MemberBanned    = "banned"
)

// Membership vincula un User con un Group. Única por par (UserID, GroupID).
// Tag y Name son copias desnormalizadas del login y nombre del usuario al
// momento de unirse; la autoría de posts y comentarios cuelga de la membresía,
// no del usuario directamente.
type Membership struct {
	ID       string
	GroupID  string
	UserID   string
	Tag      string // copia del login del usuario
	Name     string // copia del nombre del usuario
	Role     Role
	Status   string // normal, suspended, banned
	JoinedAt time.Time
}

// CanAct indica si la membresía puede ejecutar operaciones de escritura en el grupo.
func (m *Membership) CanAct() bool {
	return m.Status == MemberNormal
}
