package catalog

import (
	"testing"

	"colohub/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalog_Get(t *testing.T) {
	c := NewStaticCatalog()

	cabinet, ok := c.Get("colocation-cabinet")
	require.True(t, ok)
	assert.Equal(t, entities.CategoryColocation, cabinet.Category)
	assert.Equal(t, entities.ScopePerQuantity, cabinet.ConfigurationScope)
	assert.True(t, cabinet.ConfigurationRequired)

	crossConnect, ok := c.Get("campus-cross-connect")
	require.True(t, ok)
	assert.False(t, crossConnect.ConfigurationRequired)

	_, ok = c.Get("ghost")
	assert.False(t, ok)
}

func TestStaticCatalog_List(t *testing.T) {
	c := NewStaticCatalog()
	products := c.List()
	require.NotEmpty(t, products)

	seen := map[string]bool{}
	for _, p := range products {
		require.NotEmpty(t, p.Key)
		require.NotEmpty(t, p.Name)
		assert.Greater(t, p.BasePrice, 0.0, p.Key)
		assert.False(t, seen[p.Key], "duplicate key %s", p.Key)
		seen[p.Key] = true
	}
}
