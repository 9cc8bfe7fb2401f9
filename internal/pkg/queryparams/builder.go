package queryparams

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Query is the fully-constrained output of a Builder: a column list, WHERE
// fragments with positional arguments, an order clause and pagination
// bounds. Repositories compose it into final SQL; no client-supplied text
// ever reaches the SQL besides the $n arguments.
type Query struct {
	Columns   []string
	Where     []string
	Args      []interface{}
	SortField string
	SortOrder string
	All       bool
	Limit     int
	Page      int
}

// Offset returns the row offset of the requested page.
func (q *Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// WhereClause renders the WHERE part, or an empty string when there are
// no constraints.
func (q *Query) WhereClause() string {
	if len(q.Where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.Where, " AND ")
}

// OrderClause renders the ORDER BY part. Both identifiers were validated
// against the whitelist during Build.
func (q *Query) OrderClause() string {
	return fmt.Sprintf(" ORDER BY %s %s", q.SortField, strings.ToUpper(q.SortOrder))
}

// Builder applies search, filters, date range and sorting from a Params
// set onto a Spec, in that fixed order.
type Builder struct {
	spec   *Spec
	params Params
	logger *zap.Logger

	where []string
	args  []interface{}
}

func NewBuilder(spec *Spec, params Params, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		spec:   spec,
		params: params,
		logger: logger,
	}
}

// Build runs the processing pipeline and returns the constrained query.
func (b *Builder) Build() *Query {
	if b.params.Search != "" {
		b.applySearch()
	}
	if len(b.params.Filter) > 0 {
		b.applyFilters()
	}
	if b.params.From != "" || b.params.To != "" {
		b.applyDateRange()
	}
	sortField, sortOrder := b.resolveSort()

	limit := b.params.Limit
	if limit <= 0 {
		limit = b.spec.defaultLimit
	}
	if limit > b.spec.maxLimit {
		limit = b.spec.maxLimit
	}
	page := b.params.Page
	if page < 1 {
		page = 1
	}

	return &Query{
		Columns:   b.spec.fields,
		Where:     b.where,
		Args:      b.args,
		SortField: sortField,
		SortOrder: sortOrder,
		All:       b.params.All,
		Limit:     limit,
		Page:      page,
	}
}

// arg registers a query argument and returns its $n placeholder.
func (b *Builder) arg(value interface{}) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

// applySearch builds an OR-group of substring matches over the
// searchable fields. No-op when the spec declares none.
func (b *Builder) applySearch() {
	if len(b.spec.searchable) == 0 {
		return
	}

	pattern := "%" + b.params.Search + "%"
	parts := make([]string, 0, len(b.spec.searchable))
	for _, field := range b.spec.searchable {
		parts = append(parts, fmt.Sprintf("%s ILIKE %s", field, b.arg(pattern)))
	}
	b.where = append(b.where, "("+strings.Join(parts, " OR ")+")")
}

// applyFilters walks the filter entries in a stable order. Fields outside
// the whitelist and nil/empty values are dropped silently; this keeps the
// query unaffected instead of surfacing an error.
func (b *Builder) applyFilters() {
	fields := make([]string, 0, len(b.params.Filter))
	for field := range b.params.Filter {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		value := b.params.Filter[field]
		if !b.spec.hasFilter(field) {
			b.logger.Debug("Filter field outside whitelist, dropped", zap.String("field", field))
			continue
		}
		if value == nil || value == "" {
			continue
		}

		if op, val, ok := operatorPair(value); ok {
			b.applyOperator(field, op, val)
		} else {
			b.where = append(b.where, fmt.Sprintf("%s = %s", field, b.arg(value)))
		}
	}
}

// applyDateRange constrains the date field with from/to bounds. Malformed
// dates are ignored, not rejected. The per-request dateField override is
// honored only for whitelisted display fields.
func (b *Builder) applyDateRange() {
	dateField := b.spec.dateField
	if b.params.DateField != "" && b.spec.hasField(b.params.DateField) {
		dateField = b.params.DateField
	}

	if isDate(b.params.From) {
		b.where = append(b.where, fmt.Sprintf("%s::date >= %s", dateField, b.arg(b.params.From)))
	}
	if isDate(b.params.To) {
		b.where = append(b.where, fmt.Sprintf("%s::date <= %s", dateField, b.arg(b.params.To)))
	}
}

// resolveSort validates the requested sort against the display-field
// whitelist, falling back to the spec defaults.
func (b *Builder) resolveSort() (field, order string) {
	field = b.params.Sort
	if field == "" || !b.spec.hasField(field) {
		return b.spec.defaultSortField, b.spec.defaultSortOrder
	}

	order = strings.ToLower(b.params.Order)
	if order != "asc" && order != "desc" {
		order = b.spec.defaultSortOrder
	}
	return field, order
}

func isDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
