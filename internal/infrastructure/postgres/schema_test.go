package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seed = SeedUser{Usuario: "cesia", Password: "54321"}

func expectTables(mock pgxmock.PgxPoolIface) {
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS usuarios`).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS clientes`).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
}

func TestEnsureSchema_InsertaSemillaSiFalta(t *testing.T) {
	mock := newMock(t)
	expectTables(mock)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM usuarios`).
		WithArgs("cesia").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`INSERT INTO usuarios`).
		WithArgs("cesia", "54321").
		WillReturnRows(pgxmock.NewRows([]string{"id_usuarios"}).AddRow(int64(1)))

	require.NoError(t, EnsureSchema(context.Background(), mock, seed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Idempotente(t *testing.T) {
	mock := newMock(t)
	expectTables(mock)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM usuarios`).
		WithArgs("cesia").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	require.NoError(t, EnsureSchema(context.Background(), mock, seed))
	assert.NoError(t, mock.ExpectationsWereMet(), "no debe insertar si ya existe")
}

func TestEnsureSchema_FallaCrearTabla(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS usuarios`).WillReturnError(errors.New("permission denied"))

	err := EnsureSchema(context.Background(), mock, seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}
