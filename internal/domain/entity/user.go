package entity

import "time"

// Niveles de autorización del sistema para User.
const (
	LevelStandard = "standard"
	LevelAdmin    = "admin"
)

// Estados de cuenta válidos para User.
const (
	AccountNormal    = "normal"
	AccountSuspended = "suspended"
	AccountBanned    = "banned"
)

// User representa un usuario registrado de la plataforma.
// Login se guarda normalizado (case folding) y es único en todo el sistema.
type User struct {
	ID             string
	Login          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	Email          string
	Phone          string
	Timezone       string
	Level          string // standard, admin
	Status         string // normal, suspended, banned
	MentorEligible bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanAct indica si la cuenta puede ejecutar operaciones (no suspendida ni bloqueada).
func (u *User) CanAct() bool {
	return u.Status == AccountNormal
}
