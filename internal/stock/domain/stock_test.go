package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/pkg/apperror"
)

type fakeLedger struct {
	in, out int64
	err     error
}

func (f fakeLedger) SumStockIn(context.Context, Scope) (int64, error)  { return f.in, f.err }
func (f fakeLedger) SumStockOut(context.Context, Scope) (int64, error) { return f.out, f.err }

func TestAvailable(t *testing.T) {
	t.Parallel()

	got, err := Available(context.Background(), fakeLedger{in: 30, out: 5}, ProductScope(1))
	require.NoError(t, err)
	assert.Equal(t, int64(25), got)

	got, err = Available(context.Background(), fakeLedger{in: 3, out: 5}, ProductScope(1))
	require.NoError(t, err)
	assert.Equal(t, int64(-2), got, "negative balances are reported as is")

	_, err = Available(context.Background(), fakeLedger{err: errors.New("db down")}, ProductScope(1))
	assert.Error(t, err)
}

func TestInsufficientStock_Messages(t *testing.T) {
	t.Parallel()

	err := InsufficientStock(5, 10, false)
	assert.EqualError(t, err, "Insufficient stock. Available: 5, Requested: 10")
	assert.ErrorIs(t, err, apperror.ErrInsufficientStock)

	err = InsufficientStock(2, 4, true)
	assert.EqualError(t, err, "Insufficient stock. Available: 2, Additional requested: 4")

	err = InsufficientStock(-3, 1, false)
	assert.EqualError(t, err, "Insufficient stock. Available: 0, Requested: 1")

	var shortfall Shortfall
	require.True(t, errors.As(err, &shortfall))
	assert.Equal(t, Shortfall{Available: 0, Requested: 1}, shortfall)
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ledger := fakeLedger{in: 20, out: 15}

	assert.NoError(t, Withdraw(ctx, ledger, BrandScope(1, 1), 5, false))
	assert.NoError(t, Withdraw(ctx, ledger, BrandScope(1, 1), 0, true), "nothing requested")
	assert.NoError(t, Withdraw(ctx, ledger, BrandScope(1, 1), -4, true), "a decrease needs no stock")

	err := Withdraw(ctx, ledger, BrandScope(1, 1), 10, false)
	assert.EqualError(t, err, "Insufficient stock. Available: 5, Requested: 10")

	err = Withdraw(ctx, fakeLedger{err: errors.New("db down")}, BrandScope(1, 1), 1, false)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestScope_Same(t *testing.T) {
	t.Parallel()

	assert.True(t, BrandScope(1, 2).Same(BrandScope(1, 2)))
	assert.False(t, BrandScope(1, 2).Same(BrandScope(1, 3)))
	assert.False(t, BrandScope(1, 2).Same(BrandScope(2, 2)))
	assert.False(t, BrandScope(1, 2).Same(ProductScope(1)))
	assert.True(t, ProductScope(1).Same(ProductScope(1)))
}
