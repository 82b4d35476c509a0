package impl

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// takeStock decrements a product's stock by qty. A failed conditional update
// is a missing product (404) or a short one (out of stock).
func takeStock(ctx context.Context, productRepo repository.ProductRepository, productID int64, qty int) error {
	ok, err := productRepo.DecrementStock(ctx, productID, qty)
	if err != nil {
		return errors.Wrap(err, "failed to decrement stock")
	}
	if ok {
		return nil
	}

	if _, err := productRepo.FindByID(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to find product")
	}

	return domainerrors.NewOutOfStockError(productID)
}
