package graphql

import (
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/graphql-go/graphql"
)

func (s *Schema) definePersonType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Person",
		Fields: graphql.Fields{
			"per_idpersona": &graphql.Field{Type: Decimal},
			"per_paterno":   &graphql.Field{Type: graphql.String},
			"per_materno":   &graphql.Field{Type: graphql.String},
			"per_nomrazon":  &graphql.Field{Type: graphql.String},
			"per_rfc":       &graphql.Field{Type: graphql.String},
			"per_status":    &graphql.Field{Type: graphql.String},
			"per_vendedor":  &graphql.Field{Type: graphql.String},
		},
	})
}

func (s *Schema) definePersonFilterInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PersonFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"search":        &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match on any name part"},
			"per_idpersona": &graphql.InputObjectFieldConfig{Type: Decimal},
			"per_status":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"per_rfc":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
}

func (s *Schema) definePermissionSummaryType() *graphql.Object {
	fields := graphql.Fields{
		"adm_idpersona":  &graphql.Field{Type: graphql.String},
		"adm_almdefault": &graphql.Field{Type: graphql.Boolean},
	}
	for _, name := range []string{
		"per_paterno", "per_materno", "per_nomrazon",
		"adm_tmov", "adm_almrecept", "adm_uninegrec",
		"persona", "almacen", "movimiento", "perfil", "estado_rec", "unegocio_rec",
	} {
		fields[name] = &graphql.Field{Type: graphql.String}
	}
	return graphql.NewObject(graphql.ObjectConfig{
		Name:   "PermissionSummary",
		Fields: fields,
	})
}

func (s *Schema) defineApplyResultType(assignmentType, parameterType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "ApplyResult",
		Fields: graphql.Fields{
			"par_adm_list":      &graphql.Field{Type: graphql.NewList(assignmentType)},
			"pnc_parametr_list": &graphql.Field{Type: graphql.NewList(parameterType)},
		},
	})
}

func (s *Schema) definePermissionInput(draft, paramDraft *graphql.InputObject) *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PermissionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"adm_idpersona":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(Decimal)},
			"adm_almacen":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"adm_perfil":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"par_tipopara":      &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Parameter type, VENRP when omitted"},
			"par_descrip1":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String), Description: "Description key whose parameter rows are replaced"},
			"par_adm_list":      &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(draft))},
			"pnc_parametr_list": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(paramDraft))},
			"is_default_alm":    &graphql.InputObjectFieldConfig{Type: graphql.Boolean, Description: "Make the target warehouse the owner's only default"},
		},
	})
}

func (s *Schema) defineTransferPermissionInput(draft *graphql.InputObject) *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "TransferPermissionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"adm_idpersona": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(Decimal)},
			"adm_almacen":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"adm_perfil":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"par_tipopara":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"par_descrip2":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String), Description: "Selects the movement types to clear"},
			"te_exists":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean, Description: "Clear exit movements"},
			"ts_exists":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean, Description: "Clear entry movements received by adm_uninegrec"},
			"adm_uninegrec": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"par_adm_list":  &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(draft))},
		},
	})
}

func (s *Schema) defineSearchPermissionsInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SearchPermissionsInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"adm_perfil":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"adm_status":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_almacen__in": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
		},
	})
}

// ============================================================================
// PERMISSION WORKFLOW RESOLVERS
// ============================================================================

func (s *Schema) resolveApplyPerms(p graphql.ResolveParams) (interface{}, error) {
	var req service.PermissionRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	res, err := s.permissions.Apply(p.Context, req)
	if err != nil {
		if !service.IsValidation(err) {
			s.logger.WithError(err).Error("Failed to apply permissions")
		}
		return nil, err
	}
	return res, nil
}

func (s *Schema) resolveApplyTransferPerms(p graphql.ResolveParams) (interface{}, error) {
	var req service.TransferPermissionRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	rows, err := s.permissions.ApplyTransfer(p.Context, req)
	if err != nil {
		if !service.IsValidation(err) {
			s.logger.WithError(err).Error("Failed to apply transfer permissions")
		}
		return nil, err
	}
	return rows, nil
}

func (s *Schema) resolveSearchPermissions(p graphql.ResolveParams) (interface{}, error) {
	m := argMap(p.Args, "filter")
	return s.assignments.SearchPermissions(p.Context, service.SearchPermissionsFilter{
		Page:       intArg(p.Args, "page"),
		PerPage:    intArg(p.Args, "per_page"),
		ProfileID:  optInt(m, "adm_perfil"),
		Status:     optString(m, "adm_status"),
		Warehouses: stringList(m, "adm_almacen__in"),
	})
}

func (s *Schema) resolvePersons(p graphql.ResolveParams) (interface{}, error) {
	m := argMap(p.Args, "filter")
	filter := repository.PersonFilter{
		ID:     optDecimal(m, "per_idpersona"),
		Status: optString(m, "per_status"),
		TaxID:  optString(m, "per_rfc"),
	}
	if search := optString(m, "search"); search != nil {
		filter.Search = *search
	}
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.catalog.ListPersons(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list persons")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}
