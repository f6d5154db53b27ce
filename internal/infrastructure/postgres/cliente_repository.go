package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `id_clientes, dni_ruc, nombre_completo, telefono, correo, direccion, estado`

// updatableColumns columnas que Update acepta en el SET.
var updatableColumns = map[string]bool{
	"dni_ruc":         true,
	"nombre_completo": true,
	"telefono":        true,
	"correo":          true,
	"direccion":       true,
	"estado":          true,
}

// ClienteRepo implementación de ClienteRepository (usable con pool, conexión o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool, conexión o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// List devuelve todos los clientes ordenados por id.
func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clienteColumns+` FROM clientes ORDER BY id_clientes`)
	if err != nil {
		return nil, domain.NewStorageError("list clientes", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, domain.NewStorageError("scan cliente", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list clientes", err)
	}
	return list, nil
}

// GetByID obtiene un cliente por id; nil, nil si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	row := r.q.QueryRow(ctx, `SELECT `+clienteColumns+` FROM clientes WHERE id_clientes = $1`, id)
	c, err := scanCliente(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get cliente", err)
	}
	return c, nil
}

// ExistsDniRuc cuenta clientes con ese dni_ruc, excluyendo excludeID si no es nil.
func (r *ClienteRepo) ExistsDniRuc(ctx context.Context, dniRuc string, excludeID *int64) (bool, error) {
	var (
		count int64
		err   error
	)
	if excludeID != nil {
		err = r.q.QueryRow(ctx,
			`SELECT COUNT(*) FROM clientes WHERE dni_ruc = $1 AND id_clientes <> $2`,
			dniRuc, *excludeID,
		).Scan(&count)
	} else {
		err = r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clientes WHERE dni_ruc = $1`, dniRuc).Scan(&count)
	}
	if err != nil {
		return false, domain.NewStorageError("check dni_ruc", err)
	}
	return count > 0, nil
}

// Create inserta el cliente y devuelve el id asignado.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) (int64, error) {
	query := `
		INSERT INTO clientes (dni_ruc, nombre_completo, telefono, correo, direccion, estado)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_clientes`
	var id int64
	err := r.q.QueryRow(ctx, query,
		c.DniRuc, c.NombreCompleto, nullable(c.Telefono), nullable(c.Correo), nullable(c.Direccion), nullable(c.Estado),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, domain.NewStorageError("insert cliente", err)
	}
	return id, nil
}

// Update arma el SET con las columnas de changes (en su orden) y devuelve las filas afectadas.
func (r *ClienteRepo) Update(ctx context.Context, id int64, changes []entity.ClienteChange) (int64, error) {
	if len(changes) == 0 {
		return 0, nil
	}
	sets := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes)+1)
	for i, ch := range changes {
		if !updatableColumns[ch.Column] {
			return 0, &domain.ValidationError{Field: ch.Column, Message: "campo no actualizable: " + ch.Column}
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", ch.Column, i+1))
		args = append(args, nullable(ch.Value))
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE clientes SET %s WHERE id_clientes = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, domain.NewStorageError("update cliente", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina un cliente por id y devuelve las filas afectadas (0 si no existía).
func (r *ClienteRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id_clientes = $1`, id)
	if err != nil {
		return 0, domain.NewStorageError("delete cliente", err)
	}
	return tag.RowsAffected(), nil
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var (
		c                                   entity.Cliente
		telefono, correo, direccion, estado pgtype.Text
	)
	if err := row.Scan(&c.ID, &c.DniRuc, &c.NombreCompleto, &telefono, &correo, &direccion, &estado); err != nil {
		return nil, err
	}
	c.Telefono = textPtr(telefono)
	c.Correo = textPtr(correo)
	c.Direccion = textPtr(direccion)
	c.Estado = textPtr(estado)
	return &c, nil
}
