package graphql

import (
	"fmt"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/graphql-go/graphql"
)

func (s *Schema) defineIdentifierType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Identifier",
		Fields: graphql.Fields{
			"caip_idenpara": &graphql.Field{Type: graphql.Int},
			"caip_enpara":   &graphql.Field{Type: graphql.String},
			"caip_idstatus": &graphql.Field{Type: graphql.Int},
			"caip_idcveusu": &graphql.Field{Type: graphql.Int},
			"caip_fechope":  &graphql.Field{Type: graphql.DateTime},
		},
	})
}

// defineParameterType defines the Parameter GraphQL type; entity resolves the referenced identifier
func (s *Schema) defineParameterType(identifierType *graphql.Object) *graphql.Object {
	fields := graphql.Fields{
		"par_idparameter": &graphql.Field{Type: graphql.Int},
		"par_tipopara":    &graphql.Field{Type: graphql.String},
		"par_idenpara":    &graphql.Field{Type: graphql.Int},
		"par_idmodulo":    &graphql.Field{Type: graphql.Int},
		"par_idstatus":    &graphql.Field{Type: graphql.Int},
		"par_idcveusu":    &graphql.Field{Type: graphql.Int},
		"par_fechope":     &graphql.Field{Type: graphql.DateTime},
		"par_horaope":     &graphql.Field{Type: graphql.String},
		"entity": &graphql.Field{
			Type: identifierType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				switch src := p.Source.(type) {
				case model.Parameter:
					return src.Entity, nil
				case *model.Parameter:
					return src.Entity, nil
				}
				return nil, nil
			},
		},
	}
	for i := 1; i <= 5; i++ {
		fields[fmt.Sprintf("par_descrip%d", i)] = &graphql.Field{Type: graphql.String}
		fields[fmt.Sprintf("par_importe%d", i)] = &graphql.Field{Type: Decimal}
	}
	for i := 1; i <= 3; i++ {
		fields[fmt.Sprintf("par_fecha%d", i)] = &graphql.Field{Type: graphql.DateTime}
		fields[fmt.Sprintf("par_hora%d", i)] = &graphql.Field{Type: graphql.String}
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name:   "Parameter",
		Fields: fields,
	})
}

// parameterInputFields lists the writable columns; required marks the create-time mandatory ones
func parameterInputFields(required bool) graphql.InputObjectConfigFieldMap {
	entity := graphql.Input(graphql.Int)
	if required {
		entity = graphql.NewNonNull(graphql.Int)
	}
	fields := graphql.InputObjectConfigFieldMap{
		"par_tipopara": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"par_idenpara": &graphql.InputObjectFieldConfig{Type: entity},
		"par_idmodulo": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"par_idstatus": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"par_idcveusu": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	}
	for i := 1; i <= 5; i++ {
		fields[fmt.Sprintf("par_descrip%d", i)] = &graphql.InputObjectFieldConfig{Type: graphql.String}
		fields[fmt.Sprintf("par_importe%d", i)] = &graphql.InputObjectFieldConfig{Type: Decimal}
	}
	for i := 1; i <= 3; i++ {
		fields[fmt.Sprintf("par_fecha%d", i)] = &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "YYYY-MM-DD"}
		fields[fmt.Sprintf("par_hora%d", i)] = &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "HH:MM:SS"}
	}
	return fields
}

func (s *Schema) defineParameterDraftInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   "ParameterDraftInput",
		Fields: parameterInputFields(true),
	})
}

func (s *Schema) defineUpdateParameterInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   "UpdateParameterInput",
		Fields: parameterInputFields(false),
	})
}

func (s *Schema) defineParameterFilterInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ParameterFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"par_idparameter":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"par_tipopara":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"par_idenpara":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"par_idenpara_in":     &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.Int)},
			"par_idenpara_not":    &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"par_idmodulo":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"par_descrip1":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"par_descrip2":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"par_descrip2_in":     &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
			"par_descrip2_not_in": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
			"par_descrip3":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"par_descrip3_in":     &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
			"par_descrip4":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"par_descrip5":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"par_idstatus":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"par_importe1":        &graphql.InputObjectFieldConfig{Type: Decimal},
			"par_importe1_not":    &graphql.InputObjectFieldConfig{Type: Decimal},
			"par_idcveusu":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"par_fechope":         &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "YYYY-MM-DD"},
		},
	})
}

func (s *Schema) defineParameterOrderInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ParameterOrderInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"column": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "par_idparameter, par_descrip1 or par_idenpara",
			},
			"desc": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})
}

func (s *Schema) defineCreateIdentifierInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateIdentifierInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"caip_enpara":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"caip_idstatus": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"caip_idcveusu": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})
}

func (s *Schema) defineIdentifierFilterInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "IdentifierFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"caip_idenpara": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"caip_enpara":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"caip_idstatus": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"caip_idcveusu": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})
}

func parameterFilter(m map[string]interface{}) (repository.ParameterFilter, error) {
	f := repository.ParameterFilter{
		ID:            optInt64(m, "par_idparameter"),
		Type:          optString(m, "par_tipopara"),
		EntityID:      optInt64(m, "par_idenpara"),
		EntityIDIn:    int64List(m, "par_idenpara_in"),
		EntityIDNot:   optInt64(m, "par_idenpara_not"),
		ModuleID:      optInt64(m, "par_idmodulo"),
		Descrip1:      optString(m, "par_descrip1"),
		Descrip2:      optString(m, "par_descrip2"),
		Descrip2In:    stringList(m, "par_descrip2_in"),
		Descrip2NotIn: stringList(m, "par_descrip2_not_in"),
		Descrip3:      optString(m, "par_descrip3"),
		Descrip3In:    stringList(m, "par_descrip3_in"),
		Descrip4:      optString(m, "par_descrip4"),
		Descrip5:      optString(m, "par_descrip5"),
		StatusID:      optInt64(m, "par_idstatus"),
		Amount1:       optDecimal(m, "par_importe1"),
		Amount1Not:    optDecimal(m, "par_importe1_not"),
		UserID:        optInt64(m, "par_idcveusu"),
	}
	var err error
	f.OperatedOn, err = optDate(m, "par_fechope")
	return f, err
}

func parameterOrder(raw interface{}) []repository.ParameterOrder {
	list, _ := raw.([]interface{})
	out := make([]repository.ParameterOrder, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		o := repository.ParameterOrder{}
		o.Column, _ = m["column"].(string)
		o.Desc, _ = m["desc"].(bool)
		out = append(out, o)
	}
	return out
}

// ============================================================================
// PARAMETER RESOLVERS
// ============================================================================

func (s *Schema) resolveParameters(p graphql.ResolveParams) (interface{}, error) {
	filter, err := parameterFilter(argMap(p.Args, "filter"))
	if err != nil {
		return nil, err
	}
	filter.OrderBy = parameterOrder(p.Args["order_by"])
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.parameters.List(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		if !service.IsValidation(err) {
			s.logger.WithError(err).Error("Failed to list parameters")
		}
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolveCreateParameter(p graphql.ResolveParams) (interface{}, error) {
	var req service.ParameterDraft
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.parameters.Create(p.Context, req)
}

func (s *Schema) resolveUpdateParameter(p graphql.ResolveParams) (interface{}, error) {
	var req service.UpdateParameterRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.parameters.Update(p.Context, int64(intArg(p.Args, "par_idparameter")), req)
}

func (s *Schema) resolveDeleteParameter(p graphql.ResolveParams) (interface{}, error) {
	id := intArg(p.Args, "par_idparameter")
	ok, err := s.parameters.Delete(p.Context, int64(id))
	if err != nil {
		return nil, err
	}
	return response.Deleted(ok, fmt.Sprintf("Parameter %d", id)), nil
}

// ============================================================================
// IDENTIFIER RESOLVERS
// ============================================================================

func (s *Schema) resolveIdentifiers(p graphql.ResolveParams) (interface{}, error) {
	m := argMap(p.Args, "filter")
	filter := repository.IdentifierFilter{
		ID:       optInt64(m, "caip_idenpara"),
		Code:     optString(m, "caip_enpara"),
		StatusID: optInt64(m, "caip_idstatus"),
		UserID:   optInt64(m, "caip_idcveusu"),
	}
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.catalog.ListIdentifiers(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list identifiers")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolveCreateIdentifier(p graphql.ResolveParams) (interface{}, error) {
	var req service.CreateIdentifierRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.catalog.CreateIdentifier(p.Context, req)
}
