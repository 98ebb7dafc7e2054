package domain

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/pkg/apperror"
)

// Scope selects the ledger rows that make up one stock level.
// A nil BrandID covers every brand of the product.
type Scope struct {
	ProductID uint
	BrandID   *uint
}

func ProductScope(productID uint) Scope {
	return Scope{ProductID: productID}
}

func BrandScope(productID, brandID uint) Scope {
	return Scope{ProductID: productID, BrandID: &brandID}
}

// Same reports whether both scopes select the same rows.
func (s Scope) Same(other Scope) bool {
	if s.ProductID != other.ProductID {
		return false
	}
	if s.BrandID == nil || other.BrandID == nil {
		return s.BrandID == nil && other.BrandID == nil
	}
	return *s.BrandID == *other.BrandID
}

// Ledger sums recorded quantities for a scope
type Ledger interface {
	SumStockIn(ctx context.Context, scope Scope) (int64, error)
	SumStockOut(ctx context.Context, scope Scope) (int64, error)
}

// Available returns stock in minus stock out for the scope. The result may be
// negative when legacy rows overdraw it; callers treat that as nothing available.
func Available(ctx context.Context, ledger Ledger, scope Scope) (int64, error) {
	in, err := ledger.SumStockIn(ctx, scope)
	if err != nil {
		return 0, err
	}
	out, err := ledger.SumStockOut(ctx, scope)
	if err != nil {
		return 0, err
	}
	return in - out, nil
}

// Shortfall describes a withdrawal the ledger cannot cover.
// Delta marks a request for additional units on top of an existing entry.
type Shortfall struct {
	Available int64
	Requested int64
	Delta     bool
}

func (s Shortfall) Error() string {
	if s.Delta {
		return fmt.Sprintf("Insufficient stock. Available: %d, Additional requested: %d", s.Available, s.Requested)
	}
	return fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", s.Available, s.Requested)
}

// InsufficientStock builds the error returned when requested exceeds available.
func InsufficientStock(available, requested int64, delta bool) error {
	if available < 0 {
		available = 0
	}
	s := Shortfall{Available: available, Requested: requested, Delta: delta}
	return apperror.InsufficientStock(s, "%s", s.Error())
}

// Withdraw checks that requested units can leave the scope.
func Withdraw(ctx context.Context, ledger Ledger, scope Scope, requested int64, delta bool) error {
	if requested <= 0 {
		return nil
	}
	available, err := Available(ctx, ledger, scope)
	if err != nil {
		return apperror.Internal(err, "failed to compute available stock")
	}
	if requested > available {
		return InsufficientStock(available, requested, delta)
	}
	return nil
}
