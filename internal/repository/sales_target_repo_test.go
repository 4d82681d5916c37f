package repository

import (
	"context"
	"testing"

	"github.com/VictorGlez97/almperms/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesTargetRepository_UpsertOverwritesMutableColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSalesTargetRepository(db)
	salary := decimal.NewFromInt(15000)

	mock.ExpectExec(`INSERT INTO "par_objetivos" .* ON CONFLICT \("obm_ano","obm_vendedor"\) DO UPDATE SET "obm_sueldo"="excluded"."obm_sueldo","obm_fechope"="excluded"."obm_fechope","obm_horaope"="excluded"."obm_horaope","obm_cveusu"="excluded"."obm_cveusu"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &model.SalesTarget{
		Year:        decimal.NewFromInt(2024),
		SellerID:    decimal.NewFromInt(77),
		Salary:      &salary,
		OperatorKey: "OP01",
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesTargetDetailRepository_DeleteByTarget(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSalesTargetDetailRepository(db)

	mock.ExpectExec(`DELETE FROM "par_objetivosdet" WHERE obd_ano = \$1 AND obd_vendedor = \$2$`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteByTarget(context.Background(), model.SalesTargetKey{Year: decimal.NewFromInt(2024), SellerID: decimal.NewFromInt(77)})

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesTargetRepository_ListOrdersByYearThenSeller(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSalesTargetRepository(db)
	op := "OP01"

	mock.ExpectQuery(`SELECT count\(\*\) FROM "par_objetivos" WHERE obm_cveusu ILIKE \$1 AND obm_cveusu = \$2`).
		WithArgs("%OP%", "OP01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "par_objetivos" WHERE .* ORDER BY obm_ano desc, obm_vendedor asc`).
		WillReturnRows(sqlmock.NewRows([]string{"obm_ano", "obm_vendedor", "obm_cveusu"}).AddRow(2024, 77, "OP01"))

	rows, total, err := repo.List(context.Background(), SalesTargetFilter{Search: "OP", OperatorKey: &op}, 0, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].SellerID.Equal(decimal.NewFromInt(77)))
	require.NoError(t, mock.ExpectationsWereMet())
}
