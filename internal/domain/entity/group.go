package entity

import "time"

// Group representa un grupo de la plataforma. Un grupo siempre nace con
// exactamente una membresía con rol owner (su creador).
type Group struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GroupWithCount proyección de Group con el total de miembros, para búsquedas
// ordenadas por popularidad.
type GroupWithCount struct {
	Group
	MemberCount int
}
