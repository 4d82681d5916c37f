package service

import (
	"context"
	"testing"
	"time"

	"github.com/VictorGlez97/almperms/internal/auth"
	"github.com/VictorGlez97/almperms/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuditFixture() (*auditService, *memStore) {
	store := newMemStore()
	svc := NewAuditService(memAuditRepo{store}).(*auditService)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func TestAuditService_CreateUsesContextOperator(t *testing.T) {
	svc, store := newAuditFixture()
	ctx := auth.WithOperator(context.Background(), "OP01")
	owner := dec(42)

	entry, err := svc.Create(ctx, CreateAuditRequest{OwnerID: &owner, Warehouse: " W1 ", Observations: "manual note"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, "W1", entry.Warehouse)
	assert.Equal(t, "OP01", entry.OperatorKey)
	assert.Equal(t, "10:30:00", entry.OperatedTime)
	assert.Len(t, store.audit, 1)
}

func TestAuditService_CreateValidation(t *testing.T) {
	svc, store := newAuditFixture()

	_, err := svc.Create(context.Background(), CreateAuditRequest{Warehouse: "WAREHOUSE-TOO-LONG"})

	assert.True(t, IsValidation(err))
	assert.Empty(t, store.audit)
}

func TestAuditService_UpdateAndDelete(t *testing.T) {
	svc, _ := newAuditFixture()
	entry, err := svc.Create(context.Background(), CreateAuditRequest{Observations: "first", OperatorKey: "OP01"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), entry.ID, UpdateAuditRequest{Observations: strPtr("second")})
	require.NoError(t, err)
	assert.Equal(t, "second", updated.Observations)
	assert.Equal(t, "OP01", updated.OperatorKey)

	_, err = svc.Update(context.Background(), uuid.New(), UpdateAuditRequest{Observations: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := svc.Delete(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Delete(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuditService_UpdateTrimsBeforeRules(t *testing.T) {
	svc, _ := newAuditFixture()
	entry, err := svc.Create(context.Background(), CreateAuditRequest{Observations: "first", OperatorKey: "OP01"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), entry.ID, UpdateAuditRequest{Warehouse: strPtr("   WH-000001   ")})
	require.NoError(t, err)
	assert.Equal(t, "WH-000001", updated.Warehouse)
}

func TestAuditService_ListFilters(t *testing.T) {
	svc, _ := newAuditFixture()
	for _, wh := range []string{"W1", "W2", "W1"} {
		_, err := svc.Create(context.Background(), CreateAuditRequest{Warehouse: wh})
		require.NoError(t, err)
	}
	w1 := "W1"

	rows, total, err := svc.List(context.Background(), repository.AuditFilter{Warehouse: &w1}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)
}
