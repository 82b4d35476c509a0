// Package query turns list request parameters into a validated, allow-listed
// Spec that the persistence layer compiles into a single bounded query.
package query

// Kind is the value type of a field, used to convert and validate filter values.
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindBool
	KindTime
)

// FilterMode declares how a field may be filtered.
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterExact
	FilterPartial
)

// Field maps an external field name onto a column.
type Field struct {
	Name       string
	Column     string
	Kind       Kind
	Filter     FilterMode
	Sortable   bool
	Searchable bool
	// Rule is an extra validator tag applied to each filter value.
	Rule string
}

// Relation is an includable association of a resource.
type Relation struct {
	// Name is the include name and the fields namespace.
	Name string
	// Association is the association name on the persistence model.
	Association string
	// ToOne relations are joined in the main query; to-many relations are preloaded.
	ToOne bool
	// ForeignKey is the column on the target that points back at the parent.
	// Preloads keep it selected so rows can be attached.
	ForeignKey string
	// Filterable allows filter[<name>.<field>] on the target's filterable fields.
	Filterable bool
	// Search lists target field names matched by the search term.
	Search []string
	// Nested are extra preload paths loaded with a to-many relation.
	Nested []string
	// NestedKeys are target columns the nested preloads join on.
	NestedKeys []string

	target func() *Schema
}

// Target returns the schema of the related resource.
func (r *Relation) Target() *Schema {
	return r.target()
}

// Schema is the allow-list table of one resource.
type Schema struct {
	Resource        string
	Table           string
	DefaultSort     string
	DefaultPageSize int
	MaxPageSize     int
	// OwnerColumn, when set, makes every listing owner-scoped.
	OwnerColumn string

	fields        map[string]Field
	fieldOrder    []string
	relations     map[string]*Relation
	relationOrder []string
}

const (
	defaultPageSize = 30
	maxPageSize     = 100
	primaryKey      = "id"
)

// NewSchema creates a schema with the default sort and page sizes.
func NewSchema(resource, table string, fields ...Field) *Schema {
	s := &Schema{
		Resource:        resource,
		Table:           table,
		DefaultSort:     primaryKey,
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
		fields:          make(map[string]Field, len(fields)),
		relations:       make(map[string]*Relation),
	}
	for _, f := range fields {
		if f.Column == "" {
			f.Column = f.Name
		}
		s.fields[f.Name] = f
		s.fieldOrder = append(s.fieldOrder, f.Name)
	}

	return s
}

// Field looks up a field by external name.
func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.fields[name]

	return f, ok
}

// Fields returns all fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, 0, len(s.fieldOrder))
	for _, name := range s.fieldOrder {
		out = append(out, s.fields[name])
	}

	return out
}

// Relation looks up an includable relation.
func (s *Schema) Relation(name string) (*Relation, bool) {
	r, ok := s.relations[name]

	return r, ok
}

// Relations returns all relations in declaration order.
func (s *Schema) Relations() []*Relation {
	out := make([]*Relation, 0, len(s.relationOrder))
	for _, name := range s.relationOrder {
		out = append(out, s.relations[name])
	}

	return out
}

// SearchFields returns the primary fields matched by the search term.
func (s *Schema) SearchFields() []Field {
	var out []Field
	for _, f := range s.Fields() {
		if f.Searchable {
			out = append(out, f)
		}
	}

	return out
}

func (s *Schema) addRelation(r *Relation) {
	s.relations[r.Name] = r
	s.relationOrder = append(s.relationOrder, r.Name)
}
