package graphql

import (
	"fmt"
	"strings"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
)

// defineAssignmentType defines the Assignment GraphQL type (one par_admalm row)
func (s *Schema) defineAssignmentType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Assignment",
		Fields: graphql.Fields{
			"adm_idpersona":   &graphql.Field{Type: Decimal},
			"adm_almacen":     &graphql.Field{Type: graphql.String},
			"adm_tmov":        &graphql.Field{Type: graphql.String},
			"adm_status":      &graphql.Field{Type: graphql.String},
			"adm_fechaact":    &graphql.Field{Type: graphql.DateTime},
			"adm_cveusu":      &graphql.Field{Type: graphql.String},
			"adm_fechope":     &graphql.Field{Type: graphql.DateTime},
			"adm_almdefault":  &graphql.Field{Type: graphql.Boolean},
			"adm_edorepemi":   &graphql.Field{Type: graphql.Int},
			"adm_uninegemi":   &graphql.Field{Type: graphql.String},
			"adm_perfil":      &graphql.Field{Type: graphql.Int},
			"adm_edoreprec":   &graphql.Field{Type: graphql.Int},
			"adm_uninegrec":   &graphql.Field{Type: graphql.String},
			"adm_almrecept":   &graphql.Field{Type: graphql.String},
			"adm_ordencompra": &graphql.Field{Type: graphql.String},
		},
	})
}

// defineAssignmentDraftInput is shared by createAssignment and both apply mutations
func (s *Schema) defineAssignmentDraftInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AssignmentDraftInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"adm_idpersona":   &graphql.InputObjectFieldConfig{Type: Decimal, Description: "Defaults to the request owner"},
			"adm_almacen":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"adm_tmov":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"adm_status":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_cveusu":      &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Defaults to the authenticated operator"},
			"adm_almdefault":  &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"adm_edorepemi":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"adm_uninegemi":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_perfil":      &graphql.InputObjectFieldConfig{Type: graphql.Int, Description: "Defaults to the request profile"},
			"adm_edoreprec":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"adm_uninegrec":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_almrecept":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_ordencompra": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
}

func (s *Schema) defineUpdateAssignmentInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateAssignmentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"adm_tmov":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_status":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_cveusu":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_almdefault":  &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"adm_edorepemi":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"adm_uninegemi":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_perfil":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"adm_edoreprec":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"adm_uninegrec":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_almrecept":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_ordencompra": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
}

func (s *Schema) defineAssignmentFilterInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AssignmentFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"search":          &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match on warehouse"},
			"adm_idpersona":   &graphql.InputObjectFieldConfig{Type: Decimal},
			"adm_almacen":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_tmov":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_status":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_fechaact":    &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "YYYY-MM-DD"},
			"adm_cveusu":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_fechope":     &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "YYYY-MM-DD"},
			"adm_almdefault":  &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"adm_edorepemi":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"adm_uninegemi":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_perfil":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"adm_edoreprec":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"adm_uninegrec":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_almrecept":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"adm_ordencompra": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
}

func assignmentKeyArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"adm_idpersona": &graphql.ArgumentConfig{Type: graphql.NewNonNull(Decimal)},
		"adm_almacen":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"adm_tmov":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}
}

func assignmentKey(args map[string]interface{}) model.AssignmentKey {
	owner, _ := args["adm_idpersona"].(decimal.Decimal)
	warehouse, _ := args["adm_almacen"].(string)
	movement, _ := args["adm_tmov"].(string)
	return model.AssignmentKey{
		OwnerID:      owner,
		Warehouse:    strings.TrimSpace(warehouse),
		MovementType: strings.TrimSpace(movement),
	}
}

func assignmentFilter(m map[string]interface{}) (repository.AssignmentFilter, error) {
	f := repository.AssignmentFilter{
		OwnerID:        optDecimal(m, "adm_idpersona"),
		Warehouse:      optString(m, "adm_almacen"),
		MovementType:   optString(m, "adm_tmov"),
		Status:         optString(m, "adm_status"),
		OperatorKey:    optString(m, "adm_cveusu"),
		IsDefault:      optBool(m, "adm_almdefault"),
		EmitterRegion:  optInt(m, "adm_edorepemi"),
		EmitterUnit:    optString(m, "adm_uninegemi"),
		ProfileID:      optInt(m, "adm_perfil"),
		ReceiverRegion: optInt(m, "adm_edoreprec"),
		ReceiverUnit:   optString(m, "adm_uninegrec"),
		ReceivingWH:    optString(m, "adm_almrecept"),
		PurchaseOrder:  optString(m, "adm_ordencompra"),
	}
	if search := optString(m, "search"); search != nil {
		f.Search = *search
	}
	var err error
	if f.UpdatedOn, err = optDate(m, "adm_fechaact"); err != nil {
		return f, err
	}
	if f.OperatedOn, err = optDate(m, "adm_fechope"); err != nil {
		return f, err
	}
	return f, nil
}

// ============================================================================
// ASSIGNMENT RESOLVERS
// ============================================================================

func (s *Schema) resolveAssignments(p graphql.ResolveParams) (interface{}, error) {
	filter, err := assignmentFilter(argMap(p.Args, "filter"))
	if err != nil {
		return nil, err
	}
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.assignments.List(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list assignments")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolveCreateAssignment(p graphql.ResolveParams) (interface{}, error) {
	var req service.AssignmentDraft
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.assignments.Create(p.Context, req)
}

func (s *Schema) resolveUpdateAssignment(p graphql.ResolveParams) (interface{}, error) {
	var req service.UpdateAssignmentRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.assignments.Update(p.Context, assignmentKey(p.Args), req)
}

func (s *Schema) resolveDeleteAssignment(p graphql.ResolveParams) (interface{}, error) {
	key := assignmentKey(p.Args)
	ok, err := s.assignments.Delete(p.Context, key)
	if err != nil {
		return nil, err
	}
	return response.Deleted(ok, fmt.Sprintf("Assignment %s/%s/%s", key.OwnerID, key.Warehouse, key.MovementType)), nil
}
