package postgres

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// lookupError maps a missing row to notFound and anything else to a database error.
func lookupError(err error, notFound *domainerrors.BaseError, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	return domainerrors.NewDatabaseExecuteError(err, action)
}

// writeError converts constraint violations raised by inserts and updates.
func writeError(err error, action string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("invalid foreign key reference")
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(action)
	default:
		return domainerrors.NewDatabaseExecuteError(err, action)
	}
}
