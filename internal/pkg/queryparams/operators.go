package queryparams

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// applyOperator resolves one {operator, value} filter entry into a SQL
// predicate. Operator tokens are case-insensitive. An unrecognized token
// falls back to equality; that permissiveness is intentional, but it is
// logged so malformed client input does not go invisible.
func (b *Builder) applyOperator(field, operator string, value interface{}) {
	switch strings.ToLower(operator) {
	case "eq":
		b.where = append(b.where, fmt.Sprintf("%s = %s", field, b.arg(value)))
	case "ne":
		b.where = append(b.where, fmt.Sprintf("%s != %s", field, b.arg(value)))
	case "gt":
		b.where = append(b.where, fmt.Sprintf("%s > %s", field, b.arg(value)))
	case "gte":
		b.where = append(b.where, fmt.Sprintf("%s >= %s", field, b.arg(value)))
	case "lt":
		b.where = append(b.where, fmt.Sprintf("%s < %s", field, b.arg(value)))
	case "lte":
		b.where = append(b.where, fmt.Sprintf("%s <= %s", field, b.arg(value)))
	case "like":
		b.where = append(b.where, fmt.Sprintf("%s ILIKE %s", field, b.arg(fmt.Sprintf("%%%v%%", value))))
	case "in":
		b.where = append(b.where, fmt.Sprintf("%s = ANY(%s)", field, b.arg(pq.Array(wrapList(value)))))
	case "notin":
		b.where = append(b.where, fmt.Sprintf("%s <> ALL(%s)", field, b.arg(pq.Array(wrapList(value)))))
	case "isnull":
		b.where = append(b.where, fmt.Sprintf("%s IS NULL", field))
	case "isnotnull":
		b.where = append(b.where, fmt.Sprintf("%s IS NOT NULL", field))
	default:
		b.logger.Warn("Unknown filter operator, falling back to equality",
			zap.String("field", field),
			zap.String("operator", operator),
		)
		b.where = append(b.where, fmt.Sprintf("%s = %s", field, b.arg(value)))
	}
}

// wrapList coerces a scalar into a single-element collection so that
// in/notin behave identically for both shapes.
func wrapList(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		return v
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return []interface{}{value}
	}
}
