// Package resource shapes entities into response objects. Only the fields
// selected for a namespace are emitted and included relations are embedded
// under their include name.
package resource

import "storefront/internal/domain/query"

// Object is one serialized record.
type Object = map[string]any

// shape collects the selected fields of one namespace.
type shape struct {
	spec      *query.Spec
	namespace string
	out       Object
}

func newShape(spec *query.Spec, namespace string, id int64) *shape {
	return &shape{
		spec:      spec,
		namespace: namespace,
		out:       Object{"id": id},
	}
}

func (s *shape) set(field string, value any) *shape {
	if s.spec == nil || s.spec.IsSelected(s.namespace, field) {
		s.out[field] = value
	}

	return s
}

// Collection applies fn to every item.
func Collection[T any](items []T, spec *query.Spec, fn func(T, *query.Spec) Object) []Object {
	out := make([]Object, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item, spec))
	}

	return out
}

func included(spec *query.Spec, relation string) bool {
	return spec != nil && spec.Included(relation)
}

func primary(spec *query.Spec, fallback string) string {
	if spec == nil {
		return fallback
	}

	return spec.Schema.Resource
}

// embedOne embeds a to-one relation, emitting null for a missing row.
func embedOne[T any](out Object, spec *query.Spec, relation string, value *T, fn func(*T, *query.Spec, string) Object) {
	if !included(spec, relation) {
		return
	}
	if value == nil {
		out[relation] = nil

		return
	}
	out[relation] = fn(value, spec, relation)
}

func embedMany[T any](out Object, spec *query.Spec, relation string, values []*T, fn func(*T, *query.Spec, string) Object) {
	if !included(spec, relation) {
		return
	}

	items := make([]Object, 0, len(values))
	for _, v := range values {
		items = append(items, fn(v, spec, relation))
	}
	out[relation] = items
}
