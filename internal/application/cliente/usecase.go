package cliente

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD de clientes. Cada operación usa una sola conexión.
type ClienteUseCase struct {
	runner ports.ConnRunner
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(runner ports.ConnRunner) *ClienteUseCase {
	return &ClienteUseCase{runner: runner}
}

// List devuelve todos los clientes (slice vacío si no hay).
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	out := make([]dto.ClienteResponse, 0)
	err := uc.runner.Run(ctx, func(clientes repository.ClienteRepository, _ repository.UsuarioRepository) error {
		list, err := clientes.List(ctx)
		if err != nil {
			return err
		}
		for _, c := range list {
			out = append(out, *ToResponse(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CheckDuplicate indica si dniRuc ya está en uso, omitiendo excludeID si se indica.
func (uc *ClienteUseCase) CheckDuplicate(ctx context.Context, dniRuc string, excludeID *int64) (bool, error) {
	if dniRuc == "" {
		return false, &domain.ValidationError{Field: FieldDniRuc, Message: "dni_ruc query param required"}
	}
	var exists bool
	err := uc.runner.Run(ctx, func(clientes repository.ClienteRepository, _ repository.UsuarioRepository) error {
		var err error
		exists, err = clientes.ExistsDniRuc(ctx, dniRuc, excludeID)
		return err
	})
	return exists, err
}

// Create valida requeridos, hace el pre-check de dni_ruc, inserta y relee el registro creado.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if err := ValidateCreate(in); err != nil {
		return nil, err
	}
	estado := in.Estado
	if estado == nil {
		def := entity.EstadoActivo
		estado = &def
	}
	cliente := &entity.Cliente{
		DniRuc:         in.DniRuc,
		NombreCompleto: in.NombreCompleto,
		Telefono:       in.Telefono,
		Correo:         in.Correo,
		Direccion:      in.Direccion,
		Estado:         estado,
	}

	var out *dto.ClienteResponse
	err := uc.runner.Run(ctx, func(clientes repository.ClienteRepository, _ repository.UsuarioRepository) error {
		exists, err := clientes.ExistsDniRuc(ctx, cliente.DniRuc, nil)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicate
		}
		// Create traduce la violación del UNIQUE a ErrDuplicate si otra petición ganó la carrera.
		id, err := clientes.Create(ctx, cliente)
		if err != nil {
			return err
		}
		created, err := clientes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = ToResponse(created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update aplica una actualización parcial. Devuelve nil sin error si el registro no existe tras actualizar.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, body map[string]json.RawMessage) (*dto.ClienteResponse, error) {
	changes, err := DeriveChanges(body)
	if err != nil {
		return nil, err
	}

	var out *dto.ClienteResponse
	err = uc.runner.Run(ctx, func(clientes repository.ClienteRepository, _ repository.UsuarioRepository) error {
		if dniRuc, ok := ChangedDniRuc(changes); ok {
			exists, err := clientes.ExistsDniRuc(ctx, dniRuc, &id)
			if err != nil {
				return err
			}
			if exists {
				return domain.ErrDuplicate
			}
		}
		if _, err := clientes.Update(ctx, id, changes); err != nil {
			return err
		}
		updated, err := clientes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = ToResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina por id sin verificar existencia.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) error {
	return uc.runner.Run(ctx, func(clientes repository.ClienteRepository, _ repository.UsuarioRepository) error {
		_, err := clientes.Delete(ctx, id)
		return err
	})
}
