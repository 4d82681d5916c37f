package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/VictorGlez97/almperms/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

// recordingPool hands gorm a sqlmock connection and keeps the options of every BeginTx call
type recordingPool struct {
	*sql.DB
	opts []*sql.TxOptions
}

func (p *recordingPool) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	p.opts = append(p.opts, opts)
	return p.DB.BeginTx(ctx, opts)
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(*gorm.DB)
	return ok
}

func TestAssignmentRepository_DeleteScopeNarrowed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAssignmentRepository(db)
	unit := "U1"

	mock.ExpectExec(`DELETE FROM "par_admalm" WHERE .*adm_tmov IN \(\$4,\$5\) AND adm_uninegrec = \$6`).
		WithArgs(sqlmock.AnyArg(), "W1", 7, "TS1", "TS2", "U1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteScope(context.Background(), AssignmentScope{
		OwnerID:       decimal.NewFromInt(42),
		Warehouse:     "W1",
		ProfileID:     7,
		MovementTypes: []string{"TS1", "TS2"},
		ReceiverUnit:  &unit,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_DeleteScopeWholeTriple(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAssignmentRepository(db)

	mock.ExpectExec(`DELETE FROM "par_admalm" WHERE adm_idpersona = \$1 AND adm_almacen = \$2 AND adm_perfil = \$3$`).
		WithArgs(sqlmock.AnyArg(), "W1", 7).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteScope(context.Background(), AssignmentScope{
		OwnerID:   decimal.NewFromInt(42),
		Warehouse: "W1",
		ProfileID: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_DemoteDefaults(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAssignmentRepository(db)

	mock.ExpectExec(`UPDATE "par_admalm" SET "adm_almdefault"=\$1 WHERE adm_idpersona = \$2 AND adm_perfil = \$3 AND adm_almacen <> \$4`).
		WithArgs(false, sqlmock.AnyArg(), 7, "W1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DemoteDefaults(context.Background(), decimal.NewFromInt(42), 7, "W1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAssignmentRepository(db)

	mock.ExpectExec(`INSERT INTO "par_admalm"`).WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &model.Assignment{
		OwnerID:      decimal.NewFromInt(42),
		Warehouse:    "W1",
		MovementType: "IN",
		ProfileID:    7,
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParameterRepository_ResolveEntityCodes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewParameterRepository(db)

	mock.ExpectQuery(`SELECT .*caip_enpara.* FROM "pnc_parametr_pm" JOIN cpp_idenpara ON .* WHERE .*par_tipopara = \$1 AND .*par_descrip2 IN \(\$2\)`).
		WithArgs("VENRP", "TRASPASO").
		WillReturnRows(sqlmock.NewRows([]string{"caip_enpara"}).AddRow("TS1").AddRow("TS2"))

	codes, err := repo.ResolveEntityCodes(context.Background(), "VENRP", []string{"TRASPASO"})

	require.NoError(t, err)
	assert.Equal(t, []string{"TS1", "TS2"}, codes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParameterRepository_DescribeEntityNoMatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewParameterRepository(db)

	mock.ExpectQuery(`SELECT .*par_descrip1.* FROM "pnc_parametr_pm" JOIN cpp_idenpara`).
		WillReturnRows(sqlmock.NewRows([]string{"par_descrip1"}))

	desc, err := repo.DescribeEntity(context.Background(), model.ParamTypeWarehouse, "W404")

	require.NoError(t, err)
	assert.Empty(t, desc)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParameterRepository_DeleteByDescription(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewParameterRepository(db)

	mock.ExpectExec(`DELETE FROM "pnc_parametr_pm" WHERE par_tipopara = \$1 AND par_descrip1 = \$2`).
		WithArgs("VENRP", "42-W1").
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteByDescription(context.Background(), "VENRP", "42-W1")

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitsThroughContext(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)
	repo := NewParameterRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "pnc_parametr_pm"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.RunInTx(context.Background(), func(txCtx context.Context) error {
		assert.True(t, inTx(txCtx))
		_, err := repo.DeleteByDescription(txCtx, "VENRP", "42-W1")
		return err
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_OpensSerializableUnits(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	pool := &recordingPool{DB: sqlDB}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = NewTransactionManager(db).RunInTx(context.Background(), func(context.Context) error { return nil })

	require.NoError(t, err)
	require.Len(t, pool.opts, 1)
	require.NotNil(t, pool.opts[0])
	assert.Equal(t, sql.LevelSerializable, pool.opts[0].Isolation)
	assert.False(t, pool.opts[0].ReadOnly)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)
	repo := NewAssignmentRepository(db)
	boom := errors.New("insert failed")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "par_admalm"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := tm.RunInTx(context.Background(), func(txCtx context.Context) error {
		if _, err := repo.DeleteScope(txCtx, AssignmentScope{OwnerID: decimal.NewFromInt(42), Warehouse: "W1", ProfileID: 7}); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_NestedJoinsOuterUnit(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.RunInTx(context.Background(), func(txCtx context.Context) error {
		return tm.RunInTx(txCtx, func(inner context.Context) error {
			assert.True(t, inTx(inner))
			return nil
		})
	})

	require.NoError(t, err)
	assert.False(t, inTx(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
