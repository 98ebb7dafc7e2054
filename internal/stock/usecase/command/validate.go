package command

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	catalog "github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/internal/stock/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

func validateQuantity(quantity int64) error {
	if quantity <= 0 {
		return apperror.Validation("Quantity must be greater than zero")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return apperror.Validation("Price per unit cannot be negative")
	}
	return nil
}

// resolveBrand checks that the brand exists and belongs to the product.
func resolveBrand(ctx context.Context, repo domain.Repository, productID, brandID uint) error {
	if productID == 0 {
		return apperror.Validation("Product is required")
	}
	if brandID == 0 {
		return apperror.Validation("Brand is required")
	}

	brand, err := repo.FindBrand(ctx, brandID)
	if err != nil {
		if errors.Is(err, catalog.ErrBrandNotFound) {
			return apperror.NotFound("Brand not found")
		}
		return apperror.Internal(err, "failed to load brand")
	}
	if brand.ProductID != productID {
		return apperror.Validation("Brand does not belong to the selected product")
	}
	return nil
}

// txError passes classified errors through and wraps store failures.
func txError(err error, message string) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Internal(err, message)
}

// errEntryMoved means the entry changed brand between the unlocked read and the lock.
var errEntryMoved = errors.New("stock entry moved to an unlocked brand")

const lockAttempts = 3

// lockEntryScopes runs fn with the brands named by brandsOf locked. fn returns
// errEntryMoved when the entry it re-reads sits outside locked, and the brands
// are looked up and locked again.
func lockEntryScopes(
	ctx context.Context,
	repo domain.Repository,
	brandsOf func(ctx context.Context) ([]uint, error),
	fn func(tx domain.Repository, locked []uint) error,
) error {
	for attempt := 1; ; attempt++ {
		brandIDs, err := brandsOf(ctx)
		if err != nil {
			return err
		}
		err = repo.WithinScopes(ctx, brandIDs, func(tx domain.Repository) error {
			return fn(tx, brandIDs)
		})
		if !errors.Is(err, errEntryMoved) {
			return err
		}
		if attempt == lockAttempts {
			return apperror.Conflict("Stock entry was changed by another request, please try again")
		}
	}
}

// scopeBrands lists the current brand of an entry and the brand it moves to.
func scopeBrands(current uint, target *uint) []uint {
	if target == nil || *target == current {
		return []uint{current}
	}
	return []uint{current, *target}
}
