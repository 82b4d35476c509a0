// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "storefront/internal/domain/errors"
)

// apply copies *src into *dst when src is set and reports whether *dst changed.
func apply[T comparable](dst *T, src *T) bool {
	if src == nil || *dst == *src {
		return false
	}
	*dst = *src

	return true
}

// dirty ORs the results of apply calls. Every call must run, so the changes
// are collected before reducing.
func dirty(changes ...bool) bool {
	for _, changed := range changes {
		if changed {
			return true
		}
	}

	return false
}

type owned interface {
	OwnedBy(userID int64) bool
}

func ensureOwner(record owned, callerID int64) error {
	if !record.OwnedBy(callerID) {
		return domainerrors.ErrForbidden
	}

	return nil
}
