package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

var clienteCols = []string{"id_clientes", "dni_ruc", "nombre_completo", "telefono", "correo", "direccion", "estado"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func strPtr(s string) *string { return &s }

func TestClienteRepo_ExistsDniRuc(t *testing.T) {
	mock := newMock(t)
	repo := NewClienteRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM clientes WHERE dni_ruc = $1`)).
		WithArgs("123").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	exists, err := repo.ExistsDniRuc(ctx, "123", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	id := int64(7)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM clientes WHERE dni_ruc = $1 AND id_clientes <> $2`)).
		WithArgs("123", int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	exists, err = repo.ExistsDniRuc(ctx, "123", &id)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClienteRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewClienteRepository(mock)

	mock.ExpectQuery(`INSERT INTO clientes`).
		WithArgs("123", "Ana", nil, "ana@mail.com", nil, "Activo").
		WillReturnRows(pgxmock.NewRows([]string{"id_clientes"}).AddRow(int64(5)))

	id, err := repo.Create(context.Background(), &entity.Cliente{
		DniRuc:         "123",
		NombreCompleto: "Ana",
		Correo:         strPtr("ana@mail.com"),
		Estado:         strPtr("Activo"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClienteRepo_Create_UniqueViolation(t *testing.T) {
	mock := newMock(t)
	repo := NewClienteRepository(mock)

	mock.ExpectQuery(`INSERT INTO clientes`).
		WithArgs("123", "Ana", nil, nil, nil, nil).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &entity.Cliente{DniRuc: "123", NombreCompleto: "Ana"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClienteRepo_Create_OtroErrorEsStorage(t *testing.T) {
	mock := newMock(t)
	repo := NewClienteRepository(mock)

	mock.ExpectQuery(`INSERT INTO clientes`).
		WithArgs("123", "Ana", nil, nil, nil, nil).
		WillReturnError(errors.New("conn closed"))

	_, err := repo.Create(context.Background(), &entity.Cliente{DniRuc: "123", NombreCompleto: "Ana"})
	var serr *domain.StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "insert cliente", serr.Op)
	assert.False(t, errors.Is(err, domain.ErrDuplicate))
}

func TestClienteRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewClienteRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`FROM clientes WHERE id_clientes = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(clienteCols).AddRow(int64(1), "123", "Ana", nil, "ana@mail.com", nil, "Activo"))
	c, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "123", c.DniRuc)
	assert.Nil(t, c.Telefono)
	require.NotNil(t, c.Correo)
	assert.Equal(t, "ana@mail.com", *c.Correo)
	require.NotNil(t, c.Estado)
	assert.Equal(t, "Activo", *c.Estado)

	mock.ExpectQuery(`FROM clientes WHERE id_clientes = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(clienteCols))
	c, err = repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, c, "sin fila devuelve nil sin error")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClienteRepo_List(t *testing.T) {
	mock := newMock(t)
	repo := NewClienteRepository(mock)

	mock.ExpectQuery(`FROM clientes ORDER BY id_clientes`).
		WillReturnRows(pgxmock.NewRows(clienteCols).
			AddRow(int64(1), "1", "A", nil, nil, nil, "Activo").
			AddRow(int64(2), "2", "B", "555", nil, nil, nil))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[1].ID)
	assert.Equal(t, "555", *list[1].Telefono)
	assert.Nil(t, list[1].Estado)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClienteRepo_Update_SetEnOrden(t *testing.T) {
	mock := newMock(t)
	repo := NewClienteRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE clientes SET dni_ruc = $1, telefono = $2, estado = $3 WHERE id_clientes = $4`)).
		WithArgs("999", nil, "Inactivo", int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	n, err := repo.Update(context.Background(), 3, []entity.ClienteChange{
		{Column: "dni_ruc", Value: strPtr("999")},
		{Column: "telefono", Value: nil},
		{Column: "estado", Value: strPtr("Inactivo")},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClienteRepo_Update_UniqueViolation(t *testing.T) {
	mock := newMock(t)
	repo := NewClienteRepository(mock)

	mock.ExpectExec(`UPDATE clientes SET dni_ruc`).
		WithArgs("111", int64(2)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Update(context.Background(), 2, []entity.ClienteChange{{Column: "dni_ruc", Value: strPtr("111")}})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestClienteRepo_Update_ColumnaNoPermitida(t *testing.T) {
	mock := newMock(t)
	repo := NewClienteRepository(mock)

	_, err := repo.Update(context.Background(), 2, []entity.ClienteChange{{Column: "id_clientes", Value: strPtr("1")}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet(), "no debe ejecutarse SQL")
}

func TestClienteRepo_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewClienteRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clientes WHERE id_clientes = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	n, err := repo.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}
