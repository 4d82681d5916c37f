package graphql

import (
	"fmt"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

func (s *Schema) defineAuditEntryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "AuditEntry",
		Fields: graphql.Fields{
			"bit_id": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					switch e := p.Source.(type) {
					case model.AuditEntry:
						return e.ID.String(), nil
					case *model.AuditEntry:
						return e.ID.String(), nil
					}
					return nil, nil
				},
			},
			"par_idparameter":   &graphql.Field{Type: graphql.Int},
			"bit_adm_idpersona": &graphql.Field{Type: Decimal},
			"bit_adm_almacen":   &graphql.Field{Type: graphql.String},
			"bit_observaciones": &graphql.Field{Type: graphql.String},
			"bit_cveusu":        &graphql.Field{Type: graphql.String},
			"bit_fechaope":      &graphql.Field{Type: graphql.DateTime},
			"bit_horaope":       &graphql.Field{Type: graphql.String},
		},
	})
}

func (s *Schema) defineAuditInput(name string) *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: name,
		Fields: graphql.InputObjectConfigFieldMap{
			"par_idparameter":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"bit_adm_idpersona": &graphql.InputObjectFieldConfig{Type: Decimal},
			"bit_adm_almacen":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"bit_observaciones": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"bit_cveusu":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
}

func (s *Schema) defineAuditFilterInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AuditFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"bit_id":            &graphql.InputObjectFieldConfig{Type: graphql.String},
			"par_idparameter":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"bit_adm_idpersona": &graphql.InputObjectFieldConfig{Type: Decimal},
			"bit_adm_almacen":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"bit_observaciones": &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match"},
			"bit_cveusu":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"bit_fechaope":      &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "YYYY-MM-DD"},
		},
	})
}

func auditID(args map[string]interface{}) (uuid.UUID, error) {
	raw, _ := args["bit_id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("bit_id must be a UUID")
	}
	return id, nil
}

// ============================================================================
// AUDIT RESOLVERS
// ============================================================================

func (s *Schema) resolveAuditLog(p graphql.ResolveParams) (interface{}, error) {
	m := argMap(p.Args, "filter")
	filter := repository.AuditFilter{
		ParameterID:  optInt64(m, "par_idparameter"),
		OwnerID:      optDecimal(m, "bit_adm_idpersona"),
		Warehouse:    optString(m, "bit_adm_almacen"),
		Observations: optString(m, "bit_observaciones"),
		OperatorKey:  optString(m, "bit_cveusu"),
	}
	if _, ok := m["bit_id"]; ok {
		id, err := auditID(m)
		if err != nil {
			return nil, err
		}
		filter.ID = &id
	}
	var err error
	if filter.OperatedOn, err = optDate(m, "bit_fechaope"); err != nil {
		return nil, err
	}
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.audit.List(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list audit log")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolveCreateAudit(p graphql.ResolveParams) (interface{}, error) {
	var req service.CreateAuditRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.audit.Create(p.Context, req)
}

func (s *Schema) resolveUpdateAudit(p graphql.ResolveParams) (interface{}, error) {
	id, err := auditID(p.Args)
	if err != nil {
		return nil, err
	}
	var req service.UpdateAuditRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.audit.Update(p.Context, id, req)
}

func (s *Schema) resolveDeleteAudit(p graphql.ResolveParams) (interface{}, error) {
	id, err := auditID(p.Args)
	if err != nil {
		return nil, err
	}
	ok, err := s.audit.Delete(p.Context, id)
	if err != nil {
		return nil, err
	}
	return response.Deleted(ok, "Audit entry "+id.String()), nil
}
