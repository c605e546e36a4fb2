package dto

import "time"

// CreateReportRequest entrada para denunciar a otro usuario.
type CreateReportRequest struct {
	ReportedID  string `json:"reported_id" validate:"required,uuid"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// ReportResponse salida de una denuncia.
type ReportResponse struct {
	ID          string     `json:"id"`
	AuthorID    string     `json:"author_id"`
	ReportedID  string     `json:"reported_id"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}
