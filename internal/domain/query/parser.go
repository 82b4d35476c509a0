package query

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/util"

	"github.com/go-playground/validator/v10"
)

const (
	paramInclude    = "include"
	paramSort       = "sort"
	paramSearch     = "search"
	paramPageNumber = "page[number]"
	paramPageSize   = "page[size]"
	prefixFields    = "fields"
	prefixFilter    = "filter"

	minSearchLength = 3
	maxSearchLength = 60
	defaultRuleText = "min=2,max=255"

	// maxPageOffset bounds (number-1)*size for page[number].
	maxPageOffset = 1<<31 - 1
)

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// Parser validates list and show parameters against a Schema.
type Parser struct {
	validate *validator.Validate
}

// NewParser creates a Parser. Filter values are checked with validate.
func NewParser(validate *validator.Validate) *Parser {
	return &Parser{validate: validate}
}

// Parse builds a list Spec. Unknown names fail with ErrInvalidQuery before any
// value is inspected; bad values fail with a ValidationError naming each field.
func (p *Parser) Parse(params url.Values, schema *Schema) (*Spec, error) {
	spec := NewSpec(schema)
	verr := domainerrors.NewValidationError()

	for _, key := range sortedKeys(params) {
		value := params.Get(key)

		var err error
		switch {
		case key == paramInclude:
			err = p.parseInclude(spec, value)
		case key == paramSort:
			err = p.parseSort(spec, value)
		case key == paramSearch:
			p.parseSearch(spec, value, verr)
		case key == paramPageNumber:
			p.parsePageNumber(spec, value, verr)
		case key == paramPageSize:
			p.parsePageSize(spec, value, verr)
		default:
			if ns, ok := bracketKey(key, prefixFields); ok {
				err = p.parseFields(spec, ns, value)
			} else if name, ok := bracketKey(key, prefixFilter); ok {
				err = p.parseFilter(spec, name, value, verr)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	if spec.Page.Number-1 > maxPageOffset/spec.Page.Size {
		verr.Add("page.number", "The page number is too large for the page size.")
	}

	if verr.HasErrors() {
		return nil, verr
	}

	if len(spec.Sorts) == 0 {
		if f, ok := schema.Field(schema.DefaultSort); ok {
			spec.Sorts = []Sort{{Field: f}}
		}
	}

	return spec, nil
}

// ParseShow builds a Spec for a single record. Only fields[...] and include
// apply; the rest of the parameter family is ignored.
func (p *Parser) ParseShow(params url.Values, schema *Schema) (*Spec, error) {
	spec := NewSpec(schema)

	for _, key := range sortedKeys(params) {
		value := params.Get(key)

		var err error
		if key == paramInclude {
			err = p.parseInclude(spec, value)
		} else if ns, ok := bracketKey(key, prefixFields); ok {
			err = p.parseFields(spec, ns, value)
		}
		if err != nil {
			return nil, err
		}
	}

	return spec, nil
}

func (p *Parser) parseInclude(spec *Spec, value string) error {
	for _, name := range util.SplitCSV(value) {
		if _, ok := spec.Schema.Relation(name); !ok {
			return domainerrors.NewInvalidQueryError(paramInclude, "relation "+name+" is not allowed")
		}
		if !spec.Included(name) {
			spec.Includes = append(spec.Includes, name)
		}
	}

	return nil
}

func (p *Parser) parseSort(spec *Spec, value string) error {
	for _, term := range util.SplitCSV(value) {
		desc := strings.HasPrefix(term, "-")
		name := strings.TrimPrefix(term, "-")

		f, ok := spec.Schema.Field(name)
		if !ok || !f.Sortable {
			return domainerrors.NewInvalidQueryError(paramSort, "sort "+name+" is not allowed")
		}
		spec.Sorts = append(spec.Sorts, Sort{Field: f, Desc: desc})
	}

	return nil
}

func (p *Parser) parseSearch(spec *Spec, value string, verr *domainerrors.ValidationError) {
	term := strings.TrimSpace(value)
	if term == "" {
		return
	}

	n := utf8.RuneCountInString(term)
	if n < minSearchLength || n > maxSearchLength {
		verr.Add(paramSearch, "The search must be between 3 and 60 characters.")

		return
	}
	spec.Search = term
}

func (p *Parser) parsePageNumber(spec *Spec, value string, verr *domainerrors.ValidationError) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		verr.Add("page.number", "The page number must be an integer of at least 1.")

		return
	}
	spec.Page.Number = n
}

func (p *Parser) parsePageSize(spec *Spec, value string, verr *domainerrors.ValidationError) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > spec.Schema.MaxPageSize {
		verr.Add("page.size", "The page size must be between 1 and "+strconv.Itoa(spec.Schema.MaxPageSize)+".")

		return
	}
	spec.Page.Size = n
}

func (p *Parser) parseFields(spec *Spec, namespace, value string) error {
	target := spec.Schema
	if namespace != spec.Schema.Resource {
		rel, ok := spec.Schema.Relation(namespace)
		if !ok {
			return domainerrors.NewInvalidQueryError("fields["+namespace+"]", "namespace is not allowed")
		}
		target = rel.Target()
	}

	names := util.SplitCSV(value)
	for _, name := range names {
		if _, ok := target.Field(name); !ok {
			return domainerrors.NewInvalidQueryError("fields["+namespace+"]", "field "+name+" is not allowed")
		}
	}
	spec.Fields[namespace] = names

	return nil
}

func (p *Parser) parseFilter(spec *Spec, key, value string, verr *domainerrors.ValidationError) error {
	relation, field, err := p.resolveFilterKey(spec.Schema, key)
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	raw := []string{value}
	if field.Filter == FilterExact {
		raw = util.SplitCSV(value)
	}

	values := make([]any, 0, len(raw))
	for _, v := range raw {
		converted, msg := p.convert(field, v)
		if msg != "" {
			verr.Add("filter."+key, msg)

			return nil
		}
		values = append(values, converted)
	}

	spec.Filters = append(spec.Filters, Filter{
		Key:      key,
		Relation: relation,
		Field:    field,
		Values:   values,
	})

	return nil
}

// resolveFilterKey accepts "col", "<resource>.col", "<table>.col" and
// "<relation>.col" for filterable to-one relations.
func (p *Parser) resolveFilterKey(schema *Schema, key string) (string, Field, error) {
	param := "filter[" + key + "]"
	invalid := domainerrors.NewInvalidQueryError(param, "filter is not allowed")

	prefix, name, dotted := strings.Cut(key, ".")
	if !dotted {
		name = key
		prefix = ""
	}

	if !dotted || prefix == schema.Resource || prefix == schema.Table {
		f, ok := schema.Field(name)
		if !ok || f.Filter == FilterNone {
			return "", Field{}, invalid
		}

		return "", f, nil
	}

	rel, ok := schema.Relation(prefix)
	if !ok || !rel.ToOne || !rel.Filterable {
		return "", Field{}, invalid
	}
	f, ok := rel.Target().Field(name)
	if !ok || f.Filter == FilterNone {
		return "", Field{}, invalid
	}

	return rel.Name, f, nil
}

// convert turns a raw filter value into the field's Go type. A non-empty
// message means the value is invalid.
func (p *Parser) convert(f Field, raw string) (any, string) {
	var value any
	switch f.Kind {
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, "The value must be an integer."
		}
		value = n
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, "The value must be true or false."
		}
		value = b
	case KindTime:
		t, ok := parseDate(raw)
		if !ok {
			return nil, "The value is not a valid date."
		}
		value = t
	default:
		rule := f.Rule
		if rule == "" {
			rule = defaultRuleText
		}
		if err := p.validate.Var(raw, rule); err != nil {
			return nil, "The value is invalid."
		}
		value = raw
	}

	if f.Kind == KindInt && f.Rule != "" {
		if err := p.validate.Var(value, f.Rule); err != nil {
			return nil, "The value is out of range."
		}
	}

	return value, ""
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// bracketKey extracts "x" from "prefix[x]".
func bracketKey(key, prefix string) (string, bool) {
	if !strings.HasPrefix(key, prefix+"[") || !strings.HasSuffix(key, "]") {
		return "", false
	}
	inner := key[len(prefix)+1 : len(key)-1]
	if inner == "" {
		return "", false
	}

	return inner, true
}

func sortedKeys(params url.Values) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
