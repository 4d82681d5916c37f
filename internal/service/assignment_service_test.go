package service

import (
	"context"
	"testing"
	"time"

	"github.com/VictorGlez97/almperms/internal/auth"
	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssignmentFixture() (*assignmentService, *memStore) {
	store := newMemStore()
	svc := NewAssignmentService(
		memAssignmentRepo{store},
		memParameterRepo{store},
		memPersonRepo{store},
		memAuditRepo{store},
		memTx{store},
	).(*assignmentService)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func TestAssignmentService_Create(t *testing.T) {
	svc, store := newAssignmentFixture()
	ctx := auth.WithOperator(context.Background(), "OP01")

	a, err := svc.Create(ctx, AssignmentDraft{
		OwnerID:      dec(42),
		Warehouse:    "W1",
		MovementType: " IN ",
		ProfileID:    intPtr(7),
		IsDefault:    boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "IN", a.MovementType)
	assert.Equal(t, "OP01", a.OperatorKey)
	assert.True(t, a.IsDefault)
	require.Len(t, store.assignments, 1)
	require.Len(t, store.audit, 1)
	assert.Contains(t, store.audit[0].Observations, "CREATE_ASSIGNMENT")
}

func TestAssignmentService_CreateDuplicateRollsBack(t *testing.T) {
	svc, store := newAssignmentFixture()
	store.assignments = []model.Assignment{seedAssignment(42, "W1", "IN", 7, false)}

	_, err := svc.Create(context.Background(), AssignmentDraft{OwnerID: dec(42), Warehouse: "W1", MovementType: "IN"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errDuplicateKey)
	assert.Len(t, store.assignments, 1)
	assert.Empty(t, store.audit)
}

func TestAssignmentService_CreateValidation(t *testing.T) {
	svc, store := newAssignmentFixture()

	_, err := svc.Create(context.Background(), AssignmentDraft{OwnerID: dec(42), Warehouse: "W1"})
	assert.True(t, IsValidation(err))

	_, err = svc.Create(context.Background(), AssignmentDraft{OwnerID: decimal.NewFromInt(-1), Warehouse: "W1", MovementType: "IN"})
	assert.True(t, IsValidation(err))

	assert.Empty(t, store.assignments)
}

func TestAssignmentService_Update(t *testing.T) {
	svc, store := newAssignmentFixture()
	store.assignments = []model.Assignment{seedAssignment(42, "W1", "IN", 7, false)}
	key := model.AssignmentKey{OwnerID: dec(42), Warehouse: "W1", MovementType: "IN"}

	updated, err := svc.Update(context.Background(), key, UpdateAssignmentRequest{
		MovementType: strPtr("OUT"),
		Status:       strPtr(" B "),
		IsDefault:    boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "OUT", updated.MovementType)
	assert.Equal(t, "B", updated.Status)
	assert.True(t, updated.IsDefault)
	require.NotNil(t, updated.UpdatedOn)
	assert.Equal(t, dateOnly(fixedNow), *updated.UpdatedOn)
	assert.Len(t, store.audit, 1)
}

func TestAssignmentService_UpdateTrimsBeforeRules(t *testing.T) {
	svc, store := newAssignmentFixture()
	store.assignments = []model.Assignment{seedAssignment(42, "W1", "IN", 7, false)}
	key := model.AssignmentKey{OwnerID: dec(42), Warehouse: "W1", MovementType: "IN"}

	updated, err := svc.Update(context.Background(), key, UpdateAssignmentRequest{
		MovementType:  strPtr("  IN  "),
		PurchaseOrder: strPtr(" S "),
	})
	require.NoError(t, err)
	assert.Equal(t, "IN", updated.MovementType)
	assert.Equal(t, "S", updated.PurchaseOrder)

	_, err = svc.Update(context.Background(), key, UpdateAssignmentRequest{MovementType: strPtr("   ")})
	assert.True(t, IsValidation(err), "got %v", err)
	assert.Equal(t, "IN", store.assignments[0].MovementType)
	assert.Len(t, store.audit, 1)
}

func TestAssignmentService_UpdateMissing(t *testing.T) {
	svc, store := newAssignmentFixture()
	key := model.AssignmentKey{OwnerID: dec(42), Warehouse: "W1", MovementType: "IN"}

	_, err := svc.Update(context.Background(), key, UpdateAssignmentRequest{Status: strPtr("B")})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, store.audit)
}

func TestAssignmentService_Delete(t *testing.T) {
	svc, store := newAssignmentFixture()
	store.assignments = []model.Assignment{seedAssignment(42, "W1", "IN", 7, false)}
	key := model.AssignmentKey{OwnerID: dec(42), Warehouse: "W1", MovementType: "IN"}

	ok, err := svc.Delete(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, store.assignments)

	ok, err = svc.Delete(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Len(t, store.audit, 1, "only the effective delete is audited")
}

func TestAssignmentService_List(t *testing.T) {
	svc, store := newAssignmentFixture()
	store.assignments = []model.Assignment{
		seedAssignment(42, "W1", "IN", 7, false),
		seedAssignment(42, "W2", "IN", 7, false),
		seedAssignment(43, "W1", "IN", 7, false),
	}
	owner := dec(42)

	rows, total, err := svc.List(context.Background(), repository.AssignmentFilter{OwnerID: &owner}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "W1", rows[0].Warehouse)
}

func TestAssignmentService_SearchPermissions(t *testing.T) {
	svc, store := newAssignmentFixture()
	region := 9
	labelled := seedAssignment(42, "W1", "IN", 7, true)
	labelled.ReceiverRegion = &region
	labelled.ReceiverUnit = "U1"
	store.assignments = []model.Assignment{
		labelled,
		seedAssignment(42, "W2", "OUT", 7, false),
		seedAssignment(43, "W1", "IN", 8, false),
	}
	store.persons = []model.Person{{ID: dec(42), PaternalName: "Lopez", MaternalName: "Perez", GivenName: "Ana"}}
	store.identifiers = []model.Identifier{
		{ID: 1, Code: "W1"},
		{ID: 2, Code: "IN"},
		{ID: 3, Code: "7"},
		{ID: 4, Code: "9"},
	}
	store.parameters = []model.Parameter{
		{ID: 1, Type: model.ParamTypeWarehouse, EntityID: 1, Descrip1: "Almacen Centro"},
		{ID: 2, Type: model.ParamTypeMovement, EntityID: 2, Descrip1: "Entrada"},
		{ID: 3, Type: model.ParamTypeProfile, EntityID: 3, Descrip1: "Supervisor"},
		{ID: 4, Type: model.ParamTypeRegion, EntityID: 4, Descrip1: "Jalisco"},
		{ID: 5, Type: model.ParamTypeBusinessUnit, Descrip5: "U1", Descrip1: "Unidad Norte"},
	}

	rows, err := svc.SearchPermissions(context.Background(), SearchPermissionsFilter{ProfileID: intPtr(7)})
	require.NoError(t, err)

	require.Len(t, rows, 1, "one row per owner")
	got := rows[0]
	assert.Equal(t, "42", got.OwnerID)
	assert.Equal(t, "Lopez Perez Ana", got.Person)
	assert.Equal(t, "Almacen Centro", got.Warehouse)
	assert.Equal(t, "Entrada", got.Movement)
	assert.Equal(t, "Supervisor", got.Profile)
	assert.Equal(t, "Jalisco", got.ReceiverRegion)
	assert.Equal(t, "Unidad Norte", got.ReceiverUnitLabel)
	assert.True(t, got.IsDefault)
}

func TestAssignmentService_SearchPermissionsMissingLabels(t *testing.T) {
	svc, store := newAssignmentFixture()
	store.assignments = []model.Assignment{seedAssignment(50, "W7", "XX", 3, false)}

	rows, err := svc.SearchPermissions(context.Background(), SearchPermissionsFilter{})
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "50", rows[0].OwnerID)
	assert.Empty(t, rows[0].Person)
	assert.Empty(t, rows[0].Warehouse)
	assert.Empty(t, rows[0].ReceiverUnitLabel)
}
