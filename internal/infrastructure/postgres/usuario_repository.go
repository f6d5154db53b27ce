package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// FindByUsuario obtiene el primer usuario (menor id) con ese nombre exacto.
func (r *UsuarioRepo) FindByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error) {
	query := `
		SELECT id_usuarios, usuario, password
		FROM usuarios WHERE usuario = $1 ORDER BY id_usuarios LIMIT 1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, usuario).Scan(&u.ID, &u.Usuario, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get usuario", err)
	}
	return &u, nil
}

// CountByUsuario cuenta usuarios con ese nombre.
func (r *UsuarioRepo) CountByUsuario(ctx context.Context, usuario string) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios WHERE usuario = $1`, usuario).Scan(&count)
	if err != nil {
		return 0, domain.NewStorageError("count usuarios", err)
	}
	return count, nil
}

// Create persiste un nuevo usuario y devuelve su id.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO usuarios (usuario, password) VALUES ($1, $2) RETURNING id_usuarios`,
		u.Usuario, u.Password,
	).Scan(&id)
	if err != nil {
		return 0, domain.NewStorageError("insert usuario", err)
	}
	return id, nil
}
