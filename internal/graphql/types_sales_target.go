package graphql

import (
	"fmt"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/pagination"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
)

func (s *Schema) defineSalesTargetType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "SalesTarget",
		Fields: graphql.Fields{
			"obm_ano":      &graphql.Field{Type: Decimal},
			"obm_vendedor": &graphql.Field{Type: Decimal},
			"obm_sueldo":   &graphql.Field{Type: Decimal},
			"obm_fechope":  &graphql.Field{Type: graphql.DateTime},
			"obm_horaope":  &graphql.Field{Type: graphql.String},
			"obm_cveusu":   &graphql.Field{Type: graphql.String},
		},
	})
}

func (s *Schema) defineSalesTargetDetailType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "SalesTargetDetail",
		Fields: graphql.Fields{
			"obd_ano":      &graphql.Field{Type: Decimal},
			"obd_vendedor": &graphql.Field{Type: Decimal},
			"obd_mes":      &graphql.Field{Type: Decimal},
			"obd_venta":    &graphql.Field{Type: Decimal},
			"obd_comision": &graphql.Field{Type: Decimal},
			"obd_fechope":  &graphql.Field{Type: graphql.DateTime},
			"obd_horaope":  &graphql.Field{Type: graphql.String},
			"obd_cveusu":   &graphql.Field{Type: graphql.String},
			"obd_areavta":  &graphql.Field{Type: graphql.String},
		},
	})
}

func (s *Schema) defineSavedSalesTargetType(target, detail *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "SavedSalesTarget",
		Fields: graphql.Fields{
			"target":   &graphql.Field{Type: target},
			"obd_list": &graphql.Field{Type: graphql.NewList(detail)},
			"deleted":  &graphql.Field{Type: graphql.Int, Description: "Months cleared before the new ones were written"},
		},
	})
}

func (s *Schema) defineSalesTargetInputs() (create, update, createDetail, updateDetail, save *graphql.InputObject) {
	create = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateSalesTargetInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"obm_ano":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(Decimal)},
			"obm_vendedor": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(Decimal)},
			"obm_sueldo":   &graphql.InputObjectFieldConfig{Type: Decimal},
			"obm_cveusu":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
	update = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateSalesTargetInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"obm_sueldo": &graphql.InputObjectFieldConfig{Type: Decimal},
			"obm_cveusu": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
	createDetail = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateSalesTargetDetailInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"obd_ano":      &graphql.InputObjectFieldConfig{Type: Decimal, Description: "Defaults to the header year inside a save"},
			"obd_vendedor": &graphql.InputObjectFieldConfig{Type: Decimal, Description: "Defaults to the header seller inside a save"},
			"obd_mes":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(Decimal)},
			"obd_venta":    &graphql.InputObjectFieldConfig{Type: Decimal},
			"obd_comision": &graphql.InputObjectFieldConfig{Type: Decimal},
			"obd_cveusu":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"obd_areavta":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
	updateDetail = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateSalesTargetDetailInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"obd_venta":    &graphql.InputObjectFieldConfig{Type: Decimal},
			"obd_comision": &graphql.InputObjectFieldConfig{Type: Decimal},
			"obd_cveusu":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"obd_areavta":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
	save = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SaveSalesTargetInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"obm_ano":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(Decimal)},
			"obm_vendedor": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(Decimal)},
			"obm_sueldo":   &graphql.InputObjectFieldConfig{Type: Decimal},
			"obm_cveusu":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"obd_list": &graphql.InputObjectFieldConfig{
				Type:        graphql.NewList(graphql.NewNonNull(createDetail)),
				Description: "Replaces the months when present; an empty list clears them",
			},
		},
	})
	return create, update, createDetail, updateDetail, save
}

func (s *Schema) defineSalesTargetFilterInputs() (target, detail *graphql.InputObject) {
	target = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SalesTargetFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"search":       &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match on operator"},
			"obm_ano":      &graphql.InputObjectFieldConfig{Type: Decimal},
			"obm_vendedor": &graphql.InputObjectFieldConfig{Type: Decimal},
			"obm_sueldo":   &graphql.InputObjectFieldConfig{Type: Decimal},
			"obm_fechope":  &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "YYYY-MM-DD"},
			"obm_horaope":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"obm_cveusu":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
	detail = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SalesTargetDetailFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"search":       &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "Partial match on area or operator"},
			"obd_ano":      &graphql.InputObjectFieldConfig{Type: Decimal},
			"obd_vendedor": &graphql.InputObjectFieldConfig{Type: Decimal},
			"obd_mes":      &graphql.InputObjectFieldConfig{Type: Decimal},
			"obd_venta":    &graphql.InputObjectFieldConfig{Type: Decimal},
			"obd_comision": &graphql.InputObjectFieldConfig{Type: Decimal},
			"obd_fechope":  &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "YYYY-MM-DD"},
			"obd_horaope":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"obd_cveusu":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"obd_areavta":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
	return target, detail
}

func salesTargetKeyArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"obm_ano":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(Decimal)},
		"obm_vendedor": &graphql.ArgumentConfig{Type: graphql.NewNonNull(Decimal)},
	}
}

func salesTargetDetailKeyArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"obd_ano":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(Decimal)},
		"obd_vendedor": &graphql.ArgumentConfig{Type: graphql.NewNonNull(Decimal)},
		"obd_mes":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(Decimal)},
	}
}

func salesTargetKey(args map[string]interface{}) (model.SalesTargetKey, error) {
	year, ok := args["obm_ano"].(decimal.Decimal)
	seller, ok2 := args["obm_vendedor"].(decimal.Decimal)
	if !ok || !ok2 {
		return model.SalesTargetKey{}, fmt.Errorf("obm_ano and obm_vendedor must be numbers")
	}
	return model.SalesTargetKey{Year: year, SellerID: seller}, nil
}

func salesTargetDetailKey(args map[string]interface{}) (model.SalesTargetDetailKey, error) {
	year, ok := args["obd_ano"].(decimal.Decimal)
	seller, ok2 := args["obd_vendedor"].(decimal.Decimal)
	month, ok3 := args["obd_mes"].(decimal.Decimal)
	if !ok || !ok2 || !ok3 {
		return model.SalesTargetDetailKey{}, fmt.Errorf("obd_ano, obd_vendedor and obd_mes must be numbers")
	}
	return model.SalesTargetDetailKey{Year: year, SellerID: seller, Month: month}, nil
}

// ============================================================================
// SALES TARGET RESOLVERS
// ============================================================================

func (s *Schema) resolveSalesTargets(p graphql.ResolveParams) (interface{}, error) {
	m := argMap(p.Args, "filter")
	filter := repository.SalesTargetFilter{
		Year:         optDecimal(m, "obm_ano"),
		SellerID:     optDecimal(m, "obm_vendedor"),
		Salary:       optDecimal(m, "obm_sueldo"),
		OperatedTime: optString(m, "obm_horaope"),
		OperatorKey:  optString(m, "obm_cveusu"),
	}
	if search := optString(m, "search"); search != nil {
		filter.Search = *search
	}
	var err error
	if filter.OperatedOn, err = optDate(m, "obm_fechope"); err != nil {
		return nil, err
	}
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.salesTargets.List(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list sales targets")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolveSalesTargetDetails(p graphql.ResolveParams) (interface{}, error) {
	m := argMap(p.Args, "filter")
	filter := repository.SalesTargetDetailFilter{
		Year:         optDecimal(m, "obd_ano"),
		SellerID:     optDecimal(m, "obd_vendedor"),
		Month:        optDecimal(m, "obd_mes"),
		Sales:        optDecimal(m, "obd_venta"),
		Commission:   optDecimal(m, "obd_comision"),
		OperatedTime: optString(m, "obd_horaope"),
		OperatorKey:  optString(m, "obd_cveusu"),
		SalesArea:    optString(m, "obd_areavta"),
	}
	if search := optString(m, "search"); search != nil {
		filter.Search = *search
	}
	var err error
	if filter.OperatedOn, err = optDate(m, "obd_fechope"); err != nil {
		return nil, err
	}
	pg := pagination.New(intArg(p.Args, "page"), intArg(p.Args, "per_page"))

	rows, total, err := s.salesTargets.ListDetails(p.Context, filter, pg.Page, pg.PerPage)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list sales target months")
		return nil, err
	}
	return response.Page{Items: rows, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

func (s *Schema) resolveSaveSalesTarget(p graphql.ResolveParams) (interface{}, error) {
	var req service.SaveSalesTargetRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	saved, err := s.salesTargets.Save(p.Context, req)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to save sales target")
		return nil, err
	}
	return saved, nil
}

func (s *Schema) resolveCreateSalesTarget(p graphql.ResolveParams) (interface{}, error) {
	var req service.CreateSalesTargetRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.salesTargets.Create(p.Context, req)
}

func (s *Schema) resolveUpdateSalesTarget(p graphql.ResolveParams) (interface{}, error) {
	key, err := salesTargetKey(p.Args)
	if err != nil {
		return nil, err
	}
	var req service.UpdateSalesTargetRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.salesTargets.Update(p.Context, key, req)
}

func (s *Schema) resolveDeleteSalesTarget(p graphql.ResolveParams) (interface{}, error) {
	key, err := salesTargetKey(p.Args)
	if err != nil {
		return nil, err
	}
	ok, err := s.salesTargets.Delete(p.Context, key)
	if err != nil {
		return nil, err
	}
	return response.Deleted(ok, "Sales target "+key.String()), nil
}

func (s *Schema) resolveCreateSalesTargetDetail(p graphql.ResolveParams) (interface{}, error) {
	var req service.CreateSalesTargetDetailRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.salesTargets.CreateDetail(p.Context, req)
}

func (s *Schema) resolveUpdateSalesTargetDetail(p graphql.ResolveParams) (interface{}, error) {
	key, err := salesTargetDetailKey(p.Args)
	if err != nil {
		return nil, err
	}
	var req service.UpdateSalesTargetDetailRequest
	if err := decodeInput(p.Args["input"], &req); err != nil {
		return nil, err
	}
	return s.salesTargets.UpdateDetail(p.Context, key, req)
}

func (s *Schema) resolveDeleteSalesTargetDetail(p graphql.ResolveParams) (interface{}, error) {
	key, err := salesTargetDetailKey(p.Args)
	if err != nil {
		return nil, err
	}
	ok, err := s.salesTargets.DeleteDetail(p.Context, key)
	if err != nil {
		return nil, err
	}
	return response.Deleted(ok, "Sales target month "+key.String()), nil
}
