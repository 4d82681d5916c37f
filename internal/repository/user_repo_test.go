package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_ListJoinsStatusCode(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	active, given := "A", "ana"

	mock.ExpectQuery(`SELECT count\(\*\) FROM "pnc_usuariospm" JOIN cpp_status ON cpp_status.cast_idstatus = pnc_usuariospm.usu_idstatus WHERE cpp_status.cast_cvstatus = \$1 AND pnc_usuariospm.usu_nousuari ILIKE \$2`).
		WithArgs("A", "%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .* FROM "pnc_usuariospm" JOIN cpp_status .* ORDER BY pnc_usuariospm.usu_idusuario asc`).
		WillReturnRows(sqlmock.NewRows([]string{"usu_idusuario", "usu_idusuari", "usu_idstatus"}).AddRow(5, "alopez", 1))
	mock.ExpectQuery(`SELECT \* FROM "cpp_status" WHERE "cpp_status"."cast_idstatus" = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"cast_idstatus", "cast_cvstatus"}).AddRow(1, "A"))

	rows, total, err := repo.List(context.Background(), UserFilter{StatusCode: &active, GivenName: &given}, 0, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Status)
	assert.Equal(t, "A", rows[0].Status.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
