package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/internal/testutil"
)

func TestTracingRepositories(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	cat := testutil.CreateCatalog(t, db, root.ID, "Hair Care", "Shampoo", "Dove")
	ctx := context.Background()

	services := NewTracingServiceRepository(NewGormServiceRepository(db))
	products := NewTracingProductRepository(NewGormProductRepository(db))
	brands := NewTracingBrandRepository(NewGormBrandRepository(db))

	service, err := services.FindByID(ctx, cat.Service.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hair Care", service.Name)

	dependents, err := products.CountDependents(ctx, cat.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dependents)

	_, err = brands.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)

	spans := recorder.Ended()
	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"repository.FindServiceByID",
		"repository.CountProductDependents",
		"repository.FindBrandByID",
	}, names)
	require.Len(t, spans, 3)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[2].Status().Code)
}
