package auth

import (
	"context"

	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

// AccountsTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que usuario y perfil nazcan juntos.
type AccountsTxRunner interface {
	RunAccounts(ctx context.Context, fn func(
		users repository.UserRepository,
		profiles repository.ProfileRepository,
	) error) error
}
