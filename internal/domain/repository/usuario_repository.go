package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	// FindByUsuario devuelve la primera coincidencia exacta o nil si no existe.
	FindByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error)
	CountByUsuario(ctx context.Context, usuario string) (int64, error)
	Create(ctx context.Context, usuario *entity.Usuario) (int64, error)
}
