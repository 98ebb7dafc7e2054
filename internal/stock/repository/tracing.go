package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/inventory-tracker/internal/stock/domain"
)

var tracer = otel.Tracer("stock-repository")

// TracingStockRepository wraps a domain.Repository with spans around the
// ledger aggregation and locking calls
type TracingStockRepository struct {
	domain.Repository
}

// NewTracingStockRepository creates a new repository with tracing
func NewTracingStockRepository(next domain.Repository) *TracingStockRepository {
	return &TracingStockRepository{Repository: next}
}

// SumStockIn with tracing
func (r *TracingStockRepository) SumStockIn(ctx context.Context, scope domain.Scope) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.SumStockIn", trace.WithAttributes(scopeAttributes(scope)...))
	defer span.End()

	total, err := r.Repository.SumStockIn(ctx, scope)
	if err != nil {
		recordError(span, err)
		return 0, err
	}
	span.SetAttributes(attribute.Int64("stock.in_total", total))
	return total, nil
}

// SumStockOut with tracing
func (r *TracingStockRepository) SumStockOut(ctx context.Context, scope domain.Scope) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.SumStockOut", trace.WithAttributes(scopeAttributes(scope)...))
	defer span.End()

	total, err := r.Repository.SumStockOut(ctx, scope)
	if err != nil {
		recordError(span, err)
		return 0, err
	}
	span.SetAttributes(attribute.Int64("stock.out_total", total))
	return total, nil
}

// WithinScopes with tracing. The transactional repository is traced as well.
func (r *TracingStockRepository) WithinScopes(ctx context.Context, brandIDs []uint, fn func(tx domain.Repository) error) error {
	ids := make([]int64, len(brandIDs))
	for i, id := range brandIDs {
		ids[i] = int64(id)
	}
	ctx, span := tracer.Start(ctx, "repository.WithinScopes", trace.WithAttributes(attribute.Int64Slice("brand.ids", ids)))
	defer span.End()

	err := r.Repository.WithinScopes(ctx, brandIDs, func(tx domain.Repository) error {
		return fn(NewTracingStockRepository(tx))
	})
	if err != nil {
		recordError(span, err)
	}
	return err
}

// ProductTotals with tracing
func (r *TracingStockRepository) ProductTotals(ctx context.Context, productID *uint) ([]domain.ProductStock, error) {
	ctx, span := tracer.Start(ctx, "repository.ProductTotals")
	defer span.End()

	rows, err := r.Repository.ProductTotals(ctx, productID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(rows)))
	return rows, nil
}

func scopeAttributes(scope domain.Scope) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.Int("stock.product_id", int(scope.ProductID))}
	if scope.BrandID != nil {
		attrs = append(attrs, attribute.Int("stock.brand_id", int(*scope.BrandID)))
	}
	return attrs
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
