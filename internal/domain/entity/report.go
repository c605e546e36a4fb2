package entity

import "time"

// Estados válidos para Report. pending -> resolved es terminal.
const (
	ReportPending  = "pending"
	ReportResolved = "resolved"
)

// ReportDescriptionMax límite de la descripción libre de una denuncia.
const ReportDescriptionMax = 1000

// Report denuncia de un usuario contra otro. Invariante: AuthorID != ReportedID.
type Report struct {
	ID          string
	AuthorID    string
	ReportedID  string
	Category    string
	Description string
	Status      string // pending, resolved
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}
