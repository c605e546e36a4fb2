package dto

import "time"

// CreateGroupRequest entrada para crear un grupo.
type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateGroupRequest entrada para renombrar/describir/abrir-cerrar un grupo.
// Los punteros distinguen "no enviado" de "enviado vacío".
type UpdateGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Active      *bool   `json:"active"`
}

// GroupResponse salida de un grupo.
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	MemberCount int       `json:"member_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MembershipResponse salida de una membresía.
type MembershipResponse struct {
	ID       string    `json:"id"`
	GroupID  string    `json:"group_id"`
	UserID   string    `json:"user_id"`
	Tag      string    `json:"tag"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joined_at"`
}

// ModerateMemberRequest entrada para moderar el acceso de un miembro.
type ModerateMemberRequest struct {
	Status string `json:"status" validate:"required,oneof=normal suspended banned"`
}

// ChangeMemberRoleRequest entrada para cambiar el rol de un miembro. Promover
// a owner transfiere la propiedad del grupo.
type ChangeMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=standard moderator owner"`
}
