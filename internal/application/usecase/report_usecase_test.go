package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
)

func TestReportCreate_AutodenunciaFalla(t *testing.T) {
	w := newWorld()
	w.addUser("u1", "ana", false)

	_, err := w.reportUC.Create("u1", dto.CreateReportRequest{
		ReportedID: "u1", Category: "spam",
	})
	assert.ErrorIs(t, err, domain.ErrSelfReport)
}

func TestReportCreate_DenunciadoDebeExistir(t *testing.T) {
	w := newWorld()
	w.addUser("u1", "ana", false)

	_, err := w.reportUC.Create("u1", dto.CreateReportRequest{
		ReportedID: "nope", Category: "spam",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = w.reportUC.Create("u1", dto.CreateReportRequest{ReportedID: "u2"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la categoría es obligatoria")
}

func TestReportResolve_ResueltaEsTerminal(t *testing.T) {
	w := newWorld()
	w.addUser("u1", "ana", false)
	w.addUser("u2", "beto", false)

	r, err := w.reportUC.Create("u1", dto.CreateReportRequest{
		ReportedID: "u2", Category: "abuso", Description: "mensajes hostiles",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportPending, r.Status)
	assert.Nil(t, r.ResolvedAt)

	resolved, err := w.reportUC.Resolve(r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReportResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)

	_, err = w.reportUC.Resolve(r.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "una denuncia resuelta no se reabre")

	_, err = w.reportUC.Resolve("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportList_FiltraPorEstado(t *testing.T) {
	w := newWorld()
	w.addUser("u1", "ana", false)
	w.addUser("u2", "beto", false)
	w.addUser("u3", "carla", false)

	r1, err := w.reportUC.Create("u1", dto.CreateReportRequest{ReportedID: "u2", Category: "spam"})
	require.NoError(t, err)
	_, err = w.reportUC.Create("u3", dto.CreateReportRequest{ReportedID: "u2", Category: "abuso"})
	require.NoError(t, err)
	_, err = w.reportUC.Resolve(r1.ID)
	require.NoError(t, err)

	pending, err := w.reportUC.List(entity.ReportPending, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "abuso", pending[0].Category)

	all, err := w.reportUC.List("", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReportListByReported_HistorialDelDenunciado(t *testing.T) {
	w := newWorld()
	w.addUser("u1", "ana", false)
	w.addUser("u2", "beto", false)
	w.addUser("u3", "carla", false)

	_, err := w.reportUC.Create("u1", dto.CreateReportRequest{ReportedID: "u3", Category: "spam"})
	require.NoError(t, err)
	_, err = w.reportUC.Create("u2", dto.CreateReportRequest{ReportedID: "u3", Category: "abuso"})
	require.NoError(t, err)
	_, err = w.reportUC.Create("u1", dto.CreateReportRequest{ReportedID: "u2", Category: "spam"})
	require.NoError(t, err)

	historial, err := w.reportUC.ListByReported("u3")
	require.NoError(t, err)
	require.Len(t, historial, 2)
	for _, r := range historial {
		assert.Equal(t, "u3", r.ReportedID)
	}

	_, err = w.reportUC.ListByReported("nope")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
