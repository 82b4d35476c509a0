// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "storefront/internal/domain/query"

// ListOutput is one page of a listing with its metadata.
type ListOutput[T any] struct {
	Items []T
	Meta  query.PageMeta
}

// NewListOutput pairs items with the page metadata of spec.
func NewListOutput[T any](items []T, total int64, spec *query.Spec) *ListOutput[T] {
	return &ListOutput[T]{
		Items: items,
		Meta:  query.NewPageMeta(spec.Page, total, len(items)),
	}
}
