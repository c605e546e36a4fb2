package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

// ReportUseCase denuncias entre usuarios. El ciclo de vida es pending ->
// resolved, terminal; la resolución es una operación de admin.
type ReportUseCase struct {
	repo     repository.ReportRepository
	userRepo repository.UserRepository
}

// NewReportUseCase construye el caso de uso con sus puertos.
func NewReportUseCase(repo repository.ReportRepository, userRepo repository.UserRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo, userRepo: userRepo}
}

// Create registra una denuncia. La autodenuncia falla con ErrSelfReport antes
// de tocar la persistencia; el denunciado debe existir.
func (uc *ReportUseCase) Create(authorID string, in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if authorID == in.ReportedID {
		return nil, domain.ErrSelfReport
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, domain.ErrInvalidInput
	}
	description := strings.TrimSpace(in.Description)
	if len(description) > entity.ReportDescriptionMax {
		return nil, domain.ErrInvalidInput
	}
	reported, err := uc.userRepo.GetByID(in.ReportedID)
	if err != nil {
		return nil, err
	}
	if reported == nil {
		return nil, domain.ErrUserNotFound
	}
	r := &entity.Report{
		ID:          uuid.New().String(),
		AuthorID:    authorID,
		ReportedID:  in.ReportedID,
		Category:    category,
		Description: description,
		Status:      entity.ReportPending,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toReportResponse(r), nil
}

// List devuelve denuncias filtradas por estado (vacío = todas). Operación de
// admin; el gate vive en el middleware HTTP.
func (uc *ReportUseCase) List(status string, page dto.PageRequest) ([]*dto.ReportResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReportResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReportResponse(r))
	}
	return out, nil
}

// ListByReported devuelve el historial de denuncias contra un usuario, para
// que el admin evalúe reincidencia antes de resolver. Operación de admin.
func (uc *ReportUseCase) ListByReported(reportedID string) ([]*dto.ReportResponse, error) {
	reported, err := uc.userRepo.GetByID(reportedID)
	if err != nil {
		return nil, err
	}
	if reported == nil {
		return nil, domain.ErrUserNotFound
	}
	list, err := uc.repo.ListByReported(reportedID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReportResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReportResponse(r))
	}
	return out, nil
}

// Resolve marca una denuncia pendiente como resuelta. Resolver una ya resuelta
// falla con ErrConflict: resolved es terminal.
func (uc *ReportUseCase) Resolve(reportID string) (*dto.ReportResponse, error) {
	r, err := uc.repo.GetByID(reportID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if r.Status != entity.ReportPending {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	r.Status = entity.ReportResolved
	r.ResolvedAt = &now
	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return toReportResponse(r), nil
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	if r == nil {
		return nil
	}
	return &dto.ReportResponse{
		ID:          r.ID,
		AuthorID:    r.AuthorID,
		ReportedID:  r.ReportedID,
		Category:    r.Category,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		ResolvedAt:  r.ResolvedAt,
	}
}
