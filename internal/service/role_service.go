package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/pkg/pagination"
)

// RolePerson is a person holding a role, labelled for seller pickers
type RolePerson struct {
	PersonID     string `json:"per_idpersona"`
	GivenName    string `json:"per_nomrazon"`
	PaternalName string `json:"per_paterno"`
	MaternalName string `json:"per_materno"`
	Seller       string `json:"vendedor"`
}

type RoleService interface {
	List(ctx context.Context, filter repository.RoleFilter, page, perPage int) ([]model.Role, int64, error)
	ByPerson(ctx context.Context, scope repository.RoleScope, page, perPage int) ([]model.Role, int64, error)
	PeopleWithRoles(ctx context.Context, scope repository.RoleScope, order []repository.PersonOrder, page, perPage int) ([]RolePerson, int64, error)
	PeopleByRole(ctx context.Context, code *string, page, perPage int) ([]RolePerson, int64, error)
}

type roleService struct {
	roleRepo repository.RoleRepository
}

func NewRoleService(roleRepo repository.RoleRepository) RoleService {
	return &roleService{roleRepo: roleRepo}
}

var personOrderColumns = map[string]bool{
	repository.PersonOrderID:       true,
	repository.PersonOrderGiven:    true,
	repository.PersonOrderPaternal: true,
	repository.PersonOrderMaternal: true,
}

func (s *roleService) List(ctx context.Context, filter repository.RoleFilter, page, perPage int) ([]model.Role, int64, error) {
	p := pagination.New(page, perPage)
	filter.Search = strings.TrimSpace(filter.Search)
	rows, total, err := s.roleRepo.List(ctx, filter, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list roles: %w", err)
	}
	return rows, total, nil
}

func (s *roleService) ByPerson(ctx context.Context, scope repository.RoleScope, page, perPage int) ([]model.Role, int64, error) {
	p := pagination.New(page, perPage)
	rows, total, err := s.roleRepo.ListScoped(ctx, scope, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list roles by person: %w", err)
	}
	return rows, total, nil
}

// PeopleWithRoles labels each holder "given paternal maternal - id"
func (s *roleService) PeopleWithRoles(ctx context.Context, scope repository.RoleScope, order []repository.PersonOrder, page, perPage int) ([]RolePerson, int64, error) {
	for _, o := range order {
		if !personOrderColumns[o.Column] {
			return nil, 0, invalidf("cannot order people by %q", o.Column)
		}
	}

	p := pagination.New(page, perPage)
	persons, total, err := s.roleRepo.PeopleWithRoles(ctx, scope, order, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list people with roles: %w", err)
	}
	out := make([]RolePerson, 0, len(persons))
	for _, person := range persons {
		rp := rolePerson(person)
		rp.Seller += " - " + rp.PersonID
		out = append(out, rp)
	}
	return out, total, nil
}

// PeopleByRole labels each holder "given paternal maternal"
func (s *roleService) PeopleByRole(ctx context.Context, code *string, page, perPage int) ([]RolePerson, int64, error) {
	if code != nil {
		c := strings.TrimSpace(*code)
		code = &c
	}

	p := pagination.New(page, perPage)
	persons, total, err := s.roleRepo.PeopleByRole(ctx, code, p.Offset, p.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list people by role: %w", err)
	}
	out := make([]RolePerson, 0, len(persons))
	for _, person := range persons {
		out = append(out, rolePerson(person))
	}
	return out, total, nil
}

func rolePerson(p model.Person) RolePerson {
	return RolePerson{
		PersonID:     p.ID.String(),
		GivenName:    p.GivenName,
		PaternalName: p.PaternalName,
		MaternalName: p.MaternalName,
		Seller:       strings.Join([]string{p.GivenName, p.PaternalName, p.MaternalName}, " "),
	}
}
