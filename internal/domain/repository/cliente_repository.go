package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	List(ctx context.Context) ([]*entity.Cliente, error)
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	// ExistsDniRuc indica si otro cliente ya usa dniRuc. excludeID omite ese registro.
	ExistsDniRuc(ctx context.Context, dniRuc string, excludeID *int64) (bool, error)
	// Create inserta y devuelve el id asignado. Devuelve domain.ErrDuplicate ante violación de unicidad.
	Create(ctx context.Context, cliente *entity.Cliente) (int64, error)
	// Update aplica changes al registro id y devuelve las filas afectadas.
	Update(ctx context.Context, id int64, changes []entity.ClienteChange) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
