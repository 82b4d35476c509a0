package query

import (
	"math"
	"slices"
)

// Spec is a validated list or show request.
type Spec struct {
	Schema *Schema
	// Fields maps a namespace (resource or relation name) to its selected
	// field names. A missing namespace selects every field.
	Fields   map[string][]string
	Filters  []Filter
	Search   string
	Sorts    []Sort
	Includes []string
	Page     Page
}

// Filter is one allow-listed predicate. Relation is empty for primary columns.
type Filter struct {
	Key      string
	Relation string
	Field    Field
	Values   []any
}

// Partial reports whether the filter matches substrings.
func (f Filter) Partial() bool {
	return f.Field.Filter == FilterPartial
}

// Sort is one ORDER BY term on a primary column.
type Sort struct {
	Field Field
	Desc  bool
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows skipped before this page. It saturates at
// math.MaxInt instead of overflowing.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}

	return (p.Number - 1) * p.Size
}

// Scope carries the caller identity used for owner-scoped resources.
type Scope struct {
	OwnerID int64
}

// NewSpec returns a Spec with the schema defaults applied.
func NewSpec(schema *Schema) *Spec {
	return &Spec{
		Schema: schema,
		Fields: make(map[string][]string),
		Page:   Page{Number: 1, Size: schema.DefaultPageSize},
	}
}

// Selected returns the selected fields of namespace. ok is false when every
// field is selected.
func (s *Spec) Selected(namespace string) (fields []string, ok bool) {
	fields, ok = s.Fields[namespace]

	return fields, ok
}

// IsSelected reports whether field of namespace is part of the output.
func (s *Spec) IsSelected(namespace, field string) bool {
	fields, ok := s.Fields[namespace]
	if !ok {
		return true
	}

	return slices.Contains(fields, field)
}

// Included reports whether relation name was requested.
func (s *Spec) Included(name string) bool {
	return slices.Contains(s.Includes, name)
}

// JoinedRelations returns the to-one relations the query must join: every
// included one, plus those referenced by filters or by a search term.
func (s *Spec) JoinedRelations() []*Relation {
	var out []*Relation
	for _, r := range s.Schema.Relations() {
		if !r.ToOne {
			continue
		}
		if s.Included(r.Name) || s.filtersOn(r.Name) || (s.Search != "" && len(r.Search) > 0) {
			out = append(out, r)
		}
	}

	return out
}

// PreloadedRelations returns the included to-many relations.
func (s *Spec) PreloadedRelations() []*Relation {
	var out []*Relation
	for _, r := range s.Schema.Relations() {
		if !r.ToOne && s.Included(r.Name) {
			out = append(out, r)
		}
	}

	return out
}

func (s *Spec) filtersOn(relation string) bool {
	for _, f := range s.Filters {
		if f.Relation == relation {
			return true
		}
	}

	return false
}
