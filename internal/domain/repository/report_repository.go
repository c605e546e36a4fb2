package repository

import "github.com/tu-usuario/mentoria-pro/internal/domain/entity"

// ReportRepository define el puerto de persistencia para Report (DIP).
type ReportRepository interface {
	Create(report *entity.Report) error
	GetByID(id string) (*entity.Report, error)
	Update(report *entity.Report) error
	List(status string, limit, offset int) ([]*entity.Report, error)
	ListByReported(reportedID string) ([]*entity.Report, error)
}
