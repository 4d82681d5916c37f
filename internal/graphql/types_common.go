package graphql

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Decimal carries numeric(12,0) owner ids and amount slots as strings so no precision is lost
var Decimal = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "Arbitrary-precision decimal, serialized as a string",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case decimal.Decimal:
			return v.String()
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			return v.String()
		}
		return nil
	},
	ParseValue: parseDecimal,
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch v := valueAST.(type) {
		case *ast.StringValue:
			return parseDecimal(v.Value)
		case *ast.IntValue:
			return parseDecimal(v.Value)
		case *ast.FloatValue:
			return parseDecimal(v.Value)
		}
		return nil
	},
})

func parseDecimal(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		return d
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	case decimal.Decimal:
		return v
	}
	return nil
}

// definePageType wraps a list type in the items/total/page/per_page envelope
func (s *Schema) definePageType(name string, item graphql.Output) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			"items":    &graphql.Field{Type: graphql.NewList(item)},
			"total":    &graphql.Field{Type: graphql.Int},
			"page":     &graphql.Field{Type: graphql.Int},
			"per_page": &graphql.Field{Type: graphql.Int},
		},
	})
}

func (s *Schema) defineDeleteResultType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "DeleteResult",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.Boolean},
			"message": &graphql.Field{Type: graphql.String},
		},
	})
}

func pageArgs(extra graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{
		"page": &graphql.ArgumentConfig{
			Type:         graphql.Int,
			DefaultValue: 1,
		},
		"per_page": &graphql.ArgumentConfig{
			Type:         graphql.Int,
			DefaultValue: 10,
			Description:  "Items per page (max 100)",
		},
	}
	for k, v := range extra {
		args[k] = v
	}
	return args
}

// decodeInput copies a GraphQL input object onto a request struct through its json tags
func decodeInput(raw interface{}, dst interface{}) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

// ============================================================================
// ARGUMENT HELPERS
// ============================================================================

func argMap(args map[string]interface{}, key string) map[string]interface{} {
	m, _ := args[key].(map[string]interface{})
	return m
}

func intArg(args map[string]interface{}, key string) int {
	v, _ := args[key].(int)
	return v
}

func optString(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func optInt(m map[string]interface{}, key string) *int {
	if v, ok := m[key].(int); ok {
		return &v
	}
	return nil
}

func optInt64(m map[string]interface{}, key string) *int64 {
	if v, ok := m[key].(int); ok {
		n := int64(v)
		return &n
	}
	return nil
}

func optBool(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func optDecimal(m map[string]interface{}, key string) *decimal.Decimal {
	if v, ok := m[key].(decimal.Decimal); ok {
		return &v
	}
	return nil
}

func optDate(m map[string]interface{}, key string) (*time.Time, error) {
	v, ok := m[key].(string)
	if !ok {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("%s must be a date (YYYY-MM-DD)", key)
	}
	return &t, nil
}

// stringList returns nil when key is absent so that an explicit empty list still filters
func stringList(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func int64List(m map[string]interface{}, key string) []int64 {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(raw))
	for _, v := range raw {
		if n, ok := v.(int); ok {
			out = append(out, int64(n))
		}
	}
	return out
}
