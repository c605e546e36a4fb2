package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/mentoria-pro/internal/application/auth"
	"github.com/tu-usuario/mentoria-pro/internal/application/usecase"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

// Ensure TxRunner implements usecase.GroupsTxRunner y auth.AccountsTxRunner.
var _ usecase.GroupsTxRunner = (*TxRunner)(nil)
var _ auth.AccountsTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunGroups inicia una transacción con los repos del ciclo de vida de grupos
// (creación con owner, cascadas de salida y borrado) y hace Commit o Rollback.
func (r *TxRunner) RunGroups(ctx context.Context, fn func(
	groups repository.GroupRepository,
	members repository.MembershipRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewGroupRepository(tx),
		NewMembershipRepository(tx),
		NewPostRepository(tx),
		NewCommentRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAccounts inicia una transacción con los repos de cuentas (registro:
// usuario + perfil nacen juntos).
func (r *TxRunner) RunAccounts(ctx context.Context, fn func(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewProfileRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
