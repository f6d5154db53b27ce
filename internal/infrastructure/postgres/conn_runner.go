package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ ports.ConnRunner = (*ConnRunner)(nil)

// ConnRunner ejecuta callbacks sobre una conexión adquirida del pool.
type ConnRunner struct {
	pool *pgxpool.Pool
}

// NewConnRunner construye el runner con el pool.
func NewConnRunner(pool *pgxpool.Pool) *ConnRunner {
	return &ConnRunner{pool: pool}
}

// Run adquiere una conexión, ejecuta fn con repos atados a ella y la libera siempre (defer).
func (r *ConnRunner) Run(ctx context.Context, fn func(
	clientes repository.ClienteRepository,
	usuarios repository.UsuarioRepository,
) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return domain.NewStorageError("acquire connection", err)
	}
	defer conn.Release()

	return fn(NewClienteRepository(conn), NewUsuarioRepository(conn))
}
