package auth

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// AuthUseCase caso de uso de login: verificación única de credenciales, sin token ni sesión.
type AuthUseCase struct {
	runner ports.ConnRunner
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(runner ports.ConnRunner) *AuthUseCase {
	return &AuthUseCase{runner: runner}
}

// Login busca el primer usuario con ese nombre y compara la contraseña en texto plano.
// ErrInvalidInput si falta usuario o password; ErrUnauthorized si no hay coincidencia.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	name := in.Name()
	if name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.UserResponse
	err := uc.runner.Run(ctx, func(_ repository.ClienteRepository, usuarios repository.UsuarioRepository) error {
		user, err := usuarios.FindByUsuario(ctx, name)
		if err != nil {
			return err
		}
		if user == nil || user.Password != in.Password {
			return domain.ErrUnauthorized
		}
		out = &dto.UserResponse{ID: user.ID, Usuario: user.Usuario}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
