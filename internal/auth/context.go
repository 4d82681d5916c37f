package auth

import "context"

type contextKey string

const contextKeyOperator contextKey = "operator_key"

// WithOperator stores the operator key stamped on rows written for this request
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, contextKeyOperator, operator)
}

// OperatorFromContext returns the operator key carried by ctx, or ""
func OperatorFromContext(ctx context.Context) string {
	if op, ok := ctx.Value(contextKeyOperator).(string); ok {
		return op
	}
	return ""
}
