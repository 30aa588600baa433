package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCatalog(t *testing.T) {
	t.Run("resolves known ingredients", func(t *testing.T) {
		c := Builtin()

		ing, ok := c.GetIngredient("flour")

		require.True(t, ok)
		assert.Equal(t, "Flour", ing.Name)
		assert.Equal(t, "cups", ing.Unit)
	})

	t.Run("unknown id reports absent", func(t *testing.T) {
		c := Builtin()

		_, ok := c.GetIngredient("unicorn-dust")

		assert.False(t, ok)
	})
}

func TestBuiltinIngredients(t *testing.T) {
	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, ing := range BuiltinIngredients() {
			assert.False(t, seen[ing.ID], "duplicate id %s", ing.ID)
			seen[ing.ID] = true
		}
	})

	t.Run("records are complete", func(t *testing.T) {
		for _, ing := range BuiltinIngredients() {
			assert.NotEmpty(t, ing.ID)
			assert.NotEmpty(t, ing.Name)
			assert.NotEmpty(t, ing.Unit)
			assert.Greater(t, ing.UnitWeight, 0.0)
		}
	})
}
