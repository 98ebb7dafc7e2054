package access

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermissions(t *testing.T) {
	t.Parallel()

	set, err := ParsePermissions(map[string][]string{
		"service":  {"view", "create", "view"},
		"stockOut": {"view"},
	})
	require.NoError(t, err)

	assert.Equal(t, ActionSet{ActionView, ActionCreate}, set.Service)
	assert.Equal(t, ActionSet{ActionView}, set.StockOut)
	assert.Empty(t, set.Product)
	assert.True(t, set.Allows(FeatureService, ActionCreate))
	assert.False(t, set.Allows(FeatureStockOut, ActionDelete))
}

func TestParsePermissions_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string][]string
	}{
		{name: "unknown feature", raw: map[string][]string{"warehouse": {"view"}}},
		{name: "role locked feature", raw: map[string][]string{"user": {"view"}}},
		{name: "unknown action", raw: map[string][]string{"product": {"approve"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParsePermissions(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestPermissionSet_JSONShape(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(PermissionSet{StockIn: ActionSet{ActionEdit}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"service":[],"product":[],"stockIn":["edit"],"stockOut":[]}`, string(body))

	var back PermissionSet
	require.NoError(t, json.Unmarshal(body, &back))
	assert.Equal(t, ActionSet{ActionEdit}, back.StockIn)
	assert.Empty(t, back.Product)
	assert.False(t, back.Allows(FeatureProduct, ActionView))
}
