package graphql

import (
	"strings"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/graphql-go/graphql"
)

func (s *Schema) defineStatusType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Status",
		Fields: graphql.Fields{
			"cast_idstatus":   &graphql.Field{Type: graphql.Int},
			"cast_cvstatus":   &graphql.Field{Type: graphql.String},
			"cast_idmodulo":   &graphql.Field{Type: graphql.Int},
			"cast_status":     &graphql.Field{Type: graphql.String},
			"cast_descrip2":   &graphql.Field{Type: graphql.String},
			"cast_descrip3":   &graphql.Field{Type: graphql.String},
			"cast_descrip4":   &graphql.Field{Type: graphql.String},
			"cast_descrip5":   &graphql.Field{Type: graphql.String},
			"cast_idstatu_id": &graphql.Field{Type: graphql.Int},
			"cast_importe1":   &graphql.Field{Type: Decimal},
			"cast_importe2":   &graphql.Field{Type: Decimal},
			"cast_fecha1":     &graphql.Field{Type: graphql.DateTime},
			"cast_fecha2":     &graphql.Field{Type: graphql.DateTime},
			"cast_idcveusu":   &graphql.Field{Type: graphql.Int},
			"cast_fechope":    &graphql.Field{Type: graphql.DateTime},
			"cast_horaope":    &graphql.Field{Type: graphql.String},
		},
	})
}

func (s *Schema) defineUserType(statusType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"usu_idusuario":    &graphql.Field{Type: graphql.Int},
			"usu_idusuari":     &graphql.Field{Type: graphql.String},
			"usu_apusuari":     &graphql.Field{Type: graphql.String},
			"usu_amusuari":     &graphql.Field{Type: graphql.String},
			"usu_nousuari":     &graphql.Field{Type: graphql.String},
			"usu_iddepto_id":   &graphql.Field{Type: graphql.Int},
			"usu_idstatus_id":  &graphql.Field{Type: graphql.Int},
			"usu_idstatus":     &graphql.Field{Type: statusType},
			"usu_idcveusu_id":  &graphql.Field{Type: graphql.Int},
			"usu_idpuesto_id":  &graphql.Field{Type: graphql.Int},
			"usu_idempresa_id": &graphql.Field{Type: graphql.Int},
			"usu_fechope":      &graphql.Field{Type: graphql.DateTime},
			"usu_cveemp":       &graphql.Field{Type: graphql.String},
			"usu_fecha":        &graphql.Field{Type: graphql.DateTime},
			"usu_dias":         &graphql.Field{Type: graphql.Int},
			"usu_idpersona":    &graphql.Field{Type: graphql.Int},
			"usu_cvemovil":     &graphql.Field{Type: graphql.String},
			"full_name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					switch u := p.Source.(type) {
					case model.User:
						return u.FullName(), nil
					case *model.User:
						return u.FullName(), nil
					}
					return nil, nil
				},
			},
		},
	})
}

func (s *Schema) defineLegacyUserType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "LegacyUser",
		Fields: graphql.Fields{
			"usu_idusuari":  &graphql.Field{Type: graphql.String},
			"usu_apusuari":  &graphql.Field{Type: graphql.String},
			"usu_amusuari":  &graphql.Field{Type: graphql.String},
			"usu_nousuari":  &graphql.Field{Type: graphql.String},
			"usu_depto":     &graphql.Field{Type: graphql.String},
			"usu_status":    &graphql.Field{Type: graphql.String},
			"usu_cveusu":    &graphql.Field{Type: graphql.String},
			"usu_fechope":   &graphql.Field{Type: graphql.DateTime},
			"usu_cveemp":    &graphql.Field{Type: graphql.String},
			"usu_puesto":    &graphql.Field{Type: graphql.String},
			"usu_fecha":     &graphql.Field{Type: graphql.DateTime},
			"usu_dias":      &graphql.Field{Type: graphql.Int},
			"usu_idpersona": &graphql.Field{Type: graphql.Int},
			"usu_idempresa": &graphql.Field{Type: graphql.String},
			"usu_cvemovil":  &graphql.Field{Type: graphql.String},
		},
	})
}

func (s *Schema) defineRoleType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Role",
		Fields: graphql.Fields{
			"rol_idroles":       &graphql.Field{Type: graphql.Int},
			"rol_idpersona":     &graphql.Field{Type: Decimal},
			"rol_idrol":         &graphql.Field{Type: graphql.String},
			"rol_idcveusu":      &graphql.Field{Type: graphql.Int},
			"rol_fechope":       &graphql.Field{Type: graphql.DateTime},
			"rol_idrolsucursal": &graphql.Field{Type: graphql.Int},
			"rol_idrolestatus":  &graphql.Field{Type: graphql.Int},
		},
	})
}

func (s *Schema) defineRolePersonType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RolePerson",
		Fields: graphql.Fields{
			"per_idpersona": &graphql.Field{Type: graphql.String},
			"per_nomrazon":  &graphql.Field{Type: graphql.String},
			"per_paterno":   &graphql.Field{Type: graphql.String},
			"per_materno":   &graphql.Field{Type: graphql.String},
			"vendedor":      &graphql.Field{Type: graphql.String, Description: "Printable seller label"},
		},
	})
}

func (s *Schema) defineAccountFilterInputs() (status, user, legacy, role, scope, personOrder *graphql.InputObject) {
	status = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "StatusFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"cast_idstatus": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"cast_cvstatus": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"cast_idmodulo": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})
	user = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UserFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"usu_idusuario": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"usu_idusuari":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"usu_apusuari":  &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match"},
			"usu_amusuari":  &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match"},
			"usu_nousuari":  &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match"},
			"usu_iddepto":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"usu_idstatus":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"cast_cvstatus": &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Status code, defaults to A; empty for any"},
			"usu_idcveusu":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"usu_idpuesto":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"usu_idempresa": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"usu_cveemp":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"usu_dias":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"usu_idpersona": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"usu_cvemovil":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
	legacy = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LegacyUserFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"usu_idusuari":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"usu_apusuari":  &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match"},
			"usu_amusuari":  &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match"},
			"usu_nousuari":  &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match"},
			"usu_depto":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"usu_status":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"usu_cveusu":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"usu_cveemp":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"usu_puesto":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"usu_dias":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"usu_idpersona": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"usu_idempresa": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"usu_cvemovil":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
	role = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "RoleFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"search":            &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match on role code"},
			"rol_idroles":       &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"rol_idpersona":     &graphql.InputObjectFieldConfig{Type: Decimal},
			"rol_idrol":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"rol_idcveusu":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"rol_fechope":       &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "YYYY-MM-DD"},
			"rol_idrolsucursal": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"rol_idrolestatus":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})
	scope = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "RoleScopeInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"per_idpersona":    &graphql.InputObjectFieldConfig{Type: Decimal},
			"par_tipopara":     &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Parameter type publishing the role codes"},
			"par_idenpara__in": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"cast_cvstatus":    &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Parameter status code, defaults to A; empty for any"},
			"rol_idrolestatus": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})
	personOrder = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PersonOrderInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"column": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"desc":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})
	return status, user, legacy, role, scope, personOrder
}

// statusCodeArg defaults an absent status code to active; an explicit empty string means any
func statusCodeArg(m map[string]interface{}, key string) *string {
	v, ok := m[key].(string)
	if !ok {
		active := model.StatusCodeActive
		return &active
	}
	if v = strings.TrimSpace(v); v == "" {
		return nil
	}
	return &v
}

func roleScope(m map[string]interface{}) repository.RoleScope {
	return repository.RoleScope{
		ParamType:       optString(m, "par_tipopara"),
		Codes:           stringList(m, "par_idenpara__in"),
		ParamStatusCode: statusCodeArg(m, "cast_cvstatus"),
		StatusID:        optInt64(m, "rol_idrolestatus"),
		PersonID:        optDecimal(m, "per_idpersona"),
	}
}

func personOrder(args map[string]interface{}) []repository.PersonOrder {
	raw, _ := args["order_by"].([]interface{})
	var out []repository.PersonOrder
	for _, v := range raw {
		m, _ := v.(map[string]interface{})
		col, _ := m["column"].(string)
		desc, _ := m["desc"].(bool)
		out = append(out, repository.PersonOrder{Column: col, Desc: desc})
	}
	return out
}

// ============================================================================
// ACCOUNT RESOLVERS
// ============================================================================

func (s *Schema) resolveStatuses(p graphql.ResolveParams) (interface{}, error) {
	m := argMap(p.Args, "filter")
	filter := repository.StatusFilter{
		ID:       optInt64(m, "cast_idstatus"),
		Code:     optString(m, "cast_cvstatus"),
		ModuleID: optInt64(m, "cast_idmodulo"),
	}
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.catalog.ListStatuses(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list statuses")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	m := argMap(p.Args, "filter")
	filter := repository.UserFilter{
		ID:           optInt64(m, "usu_idusuario"),
		Login:        optString(m, "usu_idusuari"),
		PaternalName: optString(m, "usu_apusuari"),
		MaternalName: optString(m, "usu_amusuari"),
		GivenName:    optString(m, "usu_nousuari"),
		DepartmentID: optInt64(m, "usu_iddepto"),
		StatusID:     optInt64(m, "usu_idstatus"),
		StatusCode:   statusCodeArg(m, "cast_cvstatus"),
		CreatedByID:  optInt64(m, "usu_idcveusu"),
		PositionID:   optInt64(m, "usu_idpuesto"),
		CompanyID:    optInt64(m, "usu_idempresa"),
		EmployeeKey:  optString(m, "usu_cveemp"),
		Days:         optInt(m, "usu_dias"),
		PersonID:     optInt64(m, "usu_idpersona"),
		MobileKey:    optString(m, "usu_cvemovil"),
	}
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.catalog.ListUsers(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list users")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolveLegacyUsers(p graphql.ResolveParams) (interface{}, error) {
	m := argMap(p.Args, "filter")
	filter := repository.LegacyUserFilter{
		Login:        optString(m, "usu_idusuari"),
		PaternalName: optString(m, "usu_apusuari"),
		MaternalName: optString(m, "usu_amusuari"),
		GivenName:    optString(m, "usu_nousuari"),
		Department:   optString(m, "usu_depto"),
		Status:       optString(m, "usu_status"),
		OperatorKey:  optString(m, "usu_cveusu"),
		EmployeeKey:  optString(m, "usu_cveemp"),
		Position:     optString(m, "usu_puesto"),
		Days:         optInt(m, "usu_dias"),
		PersonID:     optInt64(m, "usu_idpersona"),
		CompanyID:    optString(m, "usu_idempresa"),
		MobileKey:    optString(m, "usu_cvemovil"),
	}
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.catalog.ListLegacyUsers(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list legacy users")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolveRoles(p graphql.ResolveParams) (interface{}, error) {
	m := argMap(p.Args, "filter")
	filter := repository.RoleFilter{
		ID:           optInt64(m, "rol_idroles"),
		PersonID:     optDecimal(m, "rol_idpersona"),
		Code:         optString(m, "rol_idrol"),
		UserID:       optInt64(m, "rol_idcveusu"),
		BranchRoleID: optInt64(m, "rol_idrolsucursal"),
		StatusID:     optInt64(m, "rol_idrolestatus"),
	}
	if search := optString(m, "search"); search != nil {
		filter.Search = *search
	}
	var err error
	if filter.OperatedOn, err = optDate(m, "rol_fechope"); err != nil {
		return nil, err
	}
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.roles.List(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list roles")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolveRolesByPerson(p graphql.ResolveParams) (interface{}, error) {
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.roles.ByPerson(p.Context, roleScope(argMap(p.Args, "scope")), pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list roles by person")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolvePeopleWithRoles(p graphql.ResolveParams) (interface{}, error) {
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.roles.PeopleWithRoles(p.Context, roleScope(argMap(p.Args, "scope")), personOrder(p.Args), pg.Page, pg.PerPage)
	if err != nil {
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolvePeopleByRole(p graphql.ResolveParams) (interface{}, error) {
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.roles.PeopleByRole(p.Context, optString(p.Args, "rol_idrol"), pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list people by role")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}
