package service

import (
	"context"
	"testing"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleFixture() (*roleService, *memStore) {
	store := newMemStore()
	store.persons = []model.Person{
		{ID: dec(1), GivenName: "Ana", PaternalName: "Lopez", MaternalName: "Diaz"},
		{ID: dec(2), GivenName: "Luis", PaternalName: "Ruiz", MaternalName: "Mora"},
		{ID: dec(3), GivenName: "Eva", PaternalName: "Soto", MaternalName: "Paz"},
	}
	active, inactive := int64(1), int64(2)
	store.roles = []model.Role{
		{ID: 1, PersonID: dec(1), Code: "VEN", StatusID: &active},
		{ID: 2, PersonID: dec(1), Code: "SUP", StatusID: &active},
		{ID: 3, PersonID: dec(2), Code: "VEN", StatusID: &inactive},
	}
	return NewRoleService(memRoleRepo{store}).(*roleService), store
}

func TestRoleService_ByPerson(t *testing.T) {
	svc, _ := newRoleFixture()
	person := dec(1)

	roles, total, err := svc.ByPerson(context.Background(), repository.RoleScope{PersonID: &person, Codes: []string{"SUP"}}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, roles, 1)
	assert.Equal(t, "SUP", roles[0].Code)
}

func TestRoleService_PeopleWithRolesLabelsSeller(t *testing.T) {
	svc, _ := newRoleFixture()
	active := int64(1)

	people, total, err := svc.PeopleWithRoles(context.Background(), repository.RoleScope{StatusID: &active}, nil, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, people, 1)
	assert.Equal(t, "Ana Lopez Diaz - 1", people[0].Seller)

	_, _, err = svc.PeopleWithRoles(context.Background(), repository.RoleScope{},
		[]repository.PersonOrder{{Column: "per_rfc; DROP TABLE x"}}, 1, 10)
	assert.True(t, IsValidation(err))
}

func TestRoleService_PeopleByRole(t *testing.T) {
	svc, _ := newRoleFixture()

	people, total, err := svc.PeopleByRole(context.Background(), strPtr(" VEN "), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, people, 2)
	assert.Equal(t, "Luis Ruiz Mora", people[1].Seller)

	people, total, err = svc.PeopleByRole(context.Background(), nil, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "Eva holds no role")
	assert.Len(t, people, 2)
}
