package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

func TestUsuarioRepo_FindByUsuario(t *testing.T) {
	mock := newMock(t)
	repo := NewUsuarioRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`FROM usuarios WHERE usuario = \$1 ORDER BY id_usuarios LIMIT 1`).
		WithArgs("cesia").
		WillReturnRows(pgxmock.NewRows([]string{"id_usuarios", "usuario", "password"}).AddRow(int64(1), "cesia", "54321"))
	u, err := repo.FindByUsuario(ctx, "cesia")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "54321", u.Password)

	mock.ExpectQuery(`FROM usuarios WHERE usuario = \$1`).
		WithArgs("nadie").
		WillReturnRows(pgxmock.NewRows([]string{"id_usuarios", "usuario", "password"}))
	u, err = repo.FindByUsuario(ctx, "nadie")
	require.NoError(t, err)
	assert.Nil(t, u)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepo_CreateYCount(t *testing.T) {
	mock := newMock(t)
	repo := NewUsuarioRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM usuarios`).
		WithArgs("cesia").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	n, err := repo.CountByUsuario(ctx, "cesia")
	require.NoError(t, err)
	assert.Zero(t, n)

	mock.ExpectQuery(`INSERT INTO usuarios`).
		WithArgs("cesia", "54321").
		WillReturnRows(pgxmock.NewRows([]string{"id_usuarios"}).AddRow(int64(1)))
	id, err := repo.Create(ctx, &entity.Usuario{Usuario: "cesia", Password: "54321"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}
