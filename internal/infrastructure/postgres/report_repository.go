package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación del puerto ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

const reportColumns = `id, author_id, reported_id, category, description, status, created_at, resolved_at`

// Create persiste una denuncia.
func (r *ReportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.AuthorID, report.ReportedID, report.Category,
		report.Description, report.Status, report.CreatedAt, report.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID obtiene una denuncia por ID.
func (r *ReportRepo) GetByID(id string) (*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	var rep entity.Report
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.AuthorID, &rep.ReportedID, &rep.Category,
		&rep.Description, &rep.Status, &rep.CreatedAt, &rep.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rep, nil
}

// Update actualiza el estado de la denuncia.
func (r *ReportRepo) Update(report *entity.Report) error {
	query := `UPDATE reports SET status = $2, resolved_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, report.ID, report.Status, report.ResolvedAt)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	return nil
}

// List devuelve denuncias por estado (vacío = todas), más recientes primero.
func (r *ReportRepo) List(status string, limit, offset int) ([]*entity.Report, error) {
	query := `
		SELECT ` + reportColumns + ` FROM reports
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

// ListByReported devuelve las denuncias contra un usuario.
func (r *ReportRepo) ListByReported(reportedID string) ([]*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE reported_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, reportedID)
	if err != nil {
		return nil, fmt.Errorf("list reports by reported: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

func scanReports(rows pgx.Rows) ([]*entity.Report, error) {
	var list []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(
			&rep.ID, &rep.AuthorID, &rep.ReportedID, &rep.Category,
			&rep.Description, &rep.Status, &rep.CreatedAt, &rep.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
