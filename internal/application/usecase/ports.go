package usecase

import (
	"context"

	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

// GroupsTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las mutaciones
// multi-paso del ciclo de vida de grupos: creación (grupo + membresía owner),
// salida de un miembro (comentarios -> posts -> membresía) y borrado del grupo
// (comentarios -> posts -> membresías -> grupo).
type GroupsTxRunner interface {
	RunGroups(ctx context.Context, fn func(
		groups repository.GroupRepository,
		members repository.MembershipRepository,
		posts repository.PostRepository,
		comments repository.CommentRepository,
	) error) error
}
