package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

const createUsuariosTable = `
	CREATE TABLE IF NOT EXISTS usuarios (
		id_usuarios SERIAL PRIMARY KEY,
		usuario     VARCHAR(50)  NOT NULL,
		password    VARCHAR(100) NOT NULL
	)`

const createClientesTable = `
	CREATE TABLE IF NOT EXISTS clientes (
		id_clientes     SERIAL PRIMARY KEY,
		dni_ruc         VARCHAR(20)  NOT NULL UNIQUE,
		nombre_completo VARCHAR(150) NOT NULL,
		telefono        VARCHAR(20),
		correo          VARCHAR(100),
		direccion       VARCHAR(200),
		estado          VARCHAR(20) DEFAULT 'Activo'
	)`

// SeedUser credencial de demostración que EnsureSchema garantiza.
type SeedUser struct {
	Usuario  string
	Password string
}

// EnsureSchema crea las tablas si no existen e inserta el usuario semilla si falta.
// Idempotente: se llama en cada arranque antes de aceptar tráfico.
func EnsureSchema(ctx context.Context, q Querier, seed SeedUser) error {
	if _, err := q.Exec(ctx, createUsuariosTable); err != nil {
		return fmt.Errorf("crear tabla usuarios: %w", err)
	}
	if _, err := q.Exec(ctx, createClientesTable); err != nil {
		return fmt.Errorf("crear tabla clientes: %w", err)
	}
	if seed.Usuario == "" {
		return nil
	}

	usuarios := NewUsuarioRepository(q)
	count, err := usuarios.CountByUsuario(ctx, seed.Usuario)
	if err != nil {
		return fmt.Errorf("verificar usuario semilla: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := usuarios.Create(ctx, &entity.Usuario{Usuario: seed.Usuario, Password: seed.Password}); err != nil {
		return fmt.Errorf("insertar usuario semilla: %w", err)
	}
	return nil
}
