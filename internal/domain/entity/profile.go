package entity

import "time"

// Límites de los campos editables del perfil.
const (
	ProfileBioMax         = 500
	ProfileDisplayNameMax = 200
)

// Profile extensión 1:1 de User con datos de presentación.
// DisplayName, si no está vacío, se muestra en lugar de User.Name.
type Profile struct {
	UserID      string
	Bio         string
	PhotoURL    string
	DisplayName string
	UpdatedAt   time.Time
}
