// Package queryparams turns the raw query string of a list endpoint into a
// safe, bounded SQL query. Every field name that ends up in SQL text has to
// pass the per-resource whitelists held by Spec; unknown fields are dropped
// silently rather than rejected.
package queryparams

import "errors"

// ErrNoDisplayFields is returned when a Spec is built without any allowed
// display fields, which would make pagination select nothing.
var ErrNoDisplayFields = errors.New("queryparams: allowed display fields must not be empty")

// Default values applied when a Spec does not override them.
const (
	DefaultLimit     = 10
	DefaultMaxLimit  = 100
	DefaultSortField = "created_at"
	DefaultSortOrder = "desc"
	DefaultDateField = "created_at"
)

// Spec is the per-resource whitelist and defaults configuration. It is
// built once (usually at wiring time), and read-only afterwards.
type Spec struct {
	fields           []string
	filters          []string
	searchable       []string
	defaultSortField string
	defaultSortOrder string
	defaultLimit     int
	maxLimit         int
	dateField        string
}

// NewSpec builds a Spec for the given allowed display fields. Filter
// fields default to the display fields until overridden.
func NewSpec(fields []string) (*Spec, error) {
	if len(fields) == 0 {
		return nil, ErrNoDisplayFields
	}

	return &Spec{
		fields:           fields,
		filters:          fields,
		defaultSortField: DefaultSortField,
		defaultSortOrder: DefaultSortOrder,
		defaultLimit:     DefaultLimit,
		maxLimit:         DefaultMaxLimit,
		dateField:        DefaultDateField,
	}, nil
}

// MustSpec is NewSpec for static wiring, where empty fields is a
// programming error.
func MustSpec(fields []string) *Spec {
	s, err := NewSpec(fields)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Spec) WithFilterFields(fields []string) *Spec {
	s.filters = fields
	return s
}

func (s *Spec) WithSearchableFields(fields []string) *Spec {
	s.searchable = fields
	return s
}

func (s *Spec) WithDateField(field string) *Spec {
	s.dateField = field
	return s
}

func (s *Spec) WithDefaultSort(field, order string) *Spec {
	s.defaultSortField = field
	s.defaultSortOrder = order
	return s
}

func (s *Spec) WithPaginationLimits(defaultLimit, maxLimit int) *Spec {
	s.defaultLimit = defaultLimit
	s.maxLimit = maxLimit
	return s
}

// Fields returns the allowed display fields, i.e. the SELECT column list.
func (s *Spec) Fields() []string {
	return s.fields
}

func (s *Spec) MaxLimit() int {
	return s.maxLimit
}

func (s *Spec) hasField(name string) bool {
	return contains(s.fields, name)
}

func (s *Spec) hasFilter(name string) bool {
	return contains(s.filters, name)
}

func contains(list []string, name string) bool {
	for _, f := range list {
		if f == name {
			return true
		}
	}
	return false
}
