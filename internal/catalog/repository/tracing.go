package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/inventory-tracker/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// TracingServiceRepository wraps a domain.ServiceRepository with tracing
type TracingServiceRepository struct {
	domain.ServiceRepository
}

// NewTracingServiceRepository creates a new service repository with tracing
func NewTracingServiceRepository(next domain.ServiceRepository) *TracingServiceRepository {
	return &TracingServiceRepository{ServiceRepository: next}
}

// Create with tracing
func (r *TracingServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	ctx, span := tracer.Start(ctx, "repository.CreateService",
		trace.WithAttributes(attribute.String("service.name", service.Name)),
	)
	defer span.End()

	if err := r.ServiceRepository.Create(ctx, service); err != nil {
		recordError(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("service.id", int(service.ID)))
	return nil
}

// FindByID with tracing
func (r *TracingServiceRepository) FindByID(ctx context.Context, id uint) (*domain.Service, error) {
	ctx, span := tracer.Start(ctx, "repository.FindServiceByID",
		trace.WithAttributes(attribute.Int("service.id", int(id))),
	)
	defer span.End()

	service, err := r.ServiceRepository.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return service, nil
}

// List with tracing
func (r *TracingServiceRepository) List(ctx context.Context) ([]domain.ServiceView, error) {
	ctx, span := tracer.Start(ctx, "repository.ListServices")
	defer span.End()

	views, err := r.ServiceRepository.List(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("services.count", len(views)))
	return views, nil
}

// CountProducts with tracing
func (r *TracingServiceRepository) CountProducts(ctx context.Context, serviceID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountServiceProducts",
		trace.WithAttributes(attribute.Int("service.id", int(serviceID))),
	)
	defer span.End()

	count, err := r.ServiceRepository.CountProducts(ctx, serviceID)
	if err != nil {
		recordError(span, err)
		return 0, err
	}
	span.SetAttributes(attribute.Int64("service.products", count))
	return count, nil
}

// TracingProductRepository wraps a domain.ProductRepository with tracing
type TracingProductRepository struct {
	domain.ProductRepository
}

// NewTracingProductRepository creates a new product repository with tracing
func NewTracingProductRepository(next domain.ProductRepository) *TracingProductRepository {
	return &TracingProductRepository{ProductRepository: next}
}

// Create with tracing
func (r *TracingProductRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.CreateProduct",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.Int("product.service_id", int(product.ServiceID)),
		),
	)
	defer span.End()

	if err := r.ProductRepository.Create(ctx, product); err != nil {
		recordError(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

// FindByID with tracing
func (r *TracingProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindProductByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.ProductRepository.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("product.service_id", int(product.ServiceID)))
	return product, nil
}

// List with tracing
func (r *TracingProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductView, error) {
	attrs := []attribute.KeyValue{}
	if filter.ServiceID != nil {
		attrs = append(attrs, attribute.Int("product.service_id", int(*filter.ServiceID)))
	}
	ctx, span := tracer.Start(ctx, "repository.ListProducts", trace.WithAttributes(attrs...))
	defer span.End()

	views, err := r.ProductRepository.List(ctx, filter)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("products.count", len(views)))
	return views, nil
}

// CountDependents with tracing
func (r *TracingProductRepository) CountDependents(ctx context.Context, productID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountProductDependents",
		trace.WithAttributes(attribute.Int("product.id", int(productID))),
	)
	defer span.End()

	count, err := r.ProductRepository.CountDependents(ctx, productID)
	if err != nil {
		recordError(span, err)
		return 0, err
	}
	span.SetAttributes(attribute.Int64("product.dependents", count))
	return count, nil
}

// TracingBrandRepository wraps a domain.BrandRepository with tracing
type TracingBrandRepository struct {
	domain.BrandRepository
}

// NewTracingBrandRepository creates a new brand repository with tracing
func NewTracingBrandRepository(next domain.BrandRepository) *TracingBrandRepository {
	return &TracingBrandRepository{BrandRepository: next}
}

// Create with tracing
func (r *TracingBrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	ctx, span := tracer.Start(ctx, "repository.CreateBrand",
		trace.WithAttributes(
			attribute.String("brand.name", brand.Name),
			attribute.Int("brand.product_id", int(brand.ProductID)),
		),
	)
	defer span.End()

	if err := r.BrandRepository.Create(ctx, brand); err != nil {
		recordError(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("brand.id", int(brand.ID)))
	return nil
}

// FindByID with tracing
func (r *TracingBrandRepository) FindByID(ctx context.Context, id uint) (*domain.Brand, error) {
	ctx, span := tracer.Start(ctx, "repository.FindBrandByID",
		trace.WithAttributes(attribute.Int("brand.id", int(id))),
	)
	defer span.End()

	brand, err := r.BrandRepository.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("brand.product_id", int(brand.ProductID)))
	return brand, nil
}

// CountStockEntries with tracing
func (r *TracingBrandRepository) CountStockEntries(ctx context.Context, brandID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountBrandStockEntries",
		trace.WithAttributes(attribute.Int("brand.id", int(brandID))),
	)
	defer span.End()

	count, err := r.BrandRepository.CountStockEntries(ctx, brandID)
	if err != nil {
		recordError(span, err)
		return 0, err
	}
	span.SetAttributes(attribute.Int64("brand.stock_entries", count))
	return count, nil
}
