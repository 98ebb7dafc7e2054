package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesSentinelByKind(t *testing.T) {
	t.Parallel()

	err := Conflict("A service with this name already exists")
	wrapped := fmt.Errorf("create service: %w", err)

	assert.True(t, errors.Is(wrapped, ErrConflict))
	assert.False(t, errors.Is(wrapped, ErrValidation))
	assert.Equal(t, "A service with this name already exists", err.Error())
}

func TestKindOf_DefaultsToInternal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("Product not found")))
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   Kind
		status int
	}{
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusBadRequest},
		{KindInsufficientStock, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.status, HTTPStatus(tt.kind))
		})
	}
}

func TestPublicMessage_HidesInternalCause(t *testing.T) {
	t.Parallel()

	err := Internal(errors.New("pq: connection refused"), "failed to list products")
	assert.Equal(t, "Internal server error", PublicMessage(err))
	assert.Equal(t, "Product not found", PublicMessage(NotFound("Product not found")))
}

func TestInsufficientStock_UnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("shortfall")
	err := InsufficientStock(cause, "Insufficient stock. Available: %d, Requested: %d", 5, 10)

	require.True(t, errors.Is(err, ErrInsufficientStock))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Insufficient stock. Available: 5, Requested: 10", err.Error())
}
