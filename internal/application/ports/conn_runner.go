package ports

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// ConnRunner define el puerto de salida para ejecutar una unidad de trabajo sobre una sola conexión.
// La implementación adquiere la conexión al entrar y la libera al salir de fn, con o sin error.
type ConnRunner interface {
	Run(ctx context.Context, fn func(
		clientes repository.ClienteRepository,
		usuarios repository.UsuarioRepository,
	) error) error
}
