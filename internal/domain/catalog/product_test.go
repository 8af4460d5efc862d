package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/bazaar/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with lowered slug", func(t *testing.T) {
		product, err := NewProduct("Mechanical Keyboard", "Mechanical-Keyboard", 129.9, 3)

		require.NoError(t, err)
		assert.Equal(t, "mechanical-keyboard", product.Slug)
		assert.Equal(t, int64(3), product.SubcategoryID)
	})

	t.Run("rejects slug with spaces", func(t *testing.T) {
		_, err := NewProduct("Keyboard", "mechanical keyboard", 129.9, 3)

		require.Error(t, err)
		var verrs shared.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, "slug", verrs.First().Field)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("Keyboard", "keyboard", -1, 3)

		assert.Error(t, err)
	})

	t.Run("requires subcategory", func(t *testing.T) {
		_, err := NewProduct("Keyboard", "keyboard", 10, 0)

		assert.Error(t, err)
	})
}

func TestProduct_SetPrice(t *testing.T) {
	product, err := NewProduct("Keyboard", "keyboard", 10, 3)
	require.NoError(t, err)

	require.NoError(t, product.SetPrice(0))
	assert.Error(t, product.SetPrice(-0.01))
	assert.Equal(t, 0.0, product.Price)
}

func TestNewProductImage(t *testing.T) {
	image, err := NewProductImage(1, "keyboard-front.webp", true)

	require.NoError(t, err)
	assert.True(t, image.IsMain)

	_, err = NewProductImage(1, "", false)
	assert.Error(t, err)
}

func TestNewProductSpec(t *testing.T) {
	spec, err := NewProductSpec(1, "switch", "brown tactile")

	require.NoError(t, err)
	assert.Equal(t, "switch", spec.Label)

	_, err = NewProductSpec(1, "switch", "")
	assert.Error(t, err)
}

func TestNewProductComment(t *testing.T) {
	t.Run("accepts boundary scores", func(t *testing.T) {
		for _, scoring := range []int{1, 5} {
			comment, err := NewProductComment(1, 2, scoring, "")
			require.NoError(t, err)
			assert.Equal(t, scoring, comment.Scoring)
			assert.Nil(t, comment.Comment)
		}
	})

	t.Run("rejects out-of-range scores", func(t *testing.T) {
		for _, scoring := range []int{0, 6, -3} {
			_, err := NewProductComment(1, 2, scoring, "")
			assert.Error(t, err)
		}
	})

	t.Run("keeps trimmed comment text", func(t *testing.T) {
		comment, err := NewProductComment(1, 2, 4, "  solid build  ")

		require.NoError(t, err)
		require.NotNil(t, comment.Comment)
		assert.Equal(t, "solid build", *comment.Comment)
	})

	t.Run("rejects oversized comment", func(t *testing.T) {
		_, err := NewProductComment(1, 2, 4, strings.Repeat("x", 1024))

		assert.Error(t, err)
	})
}

func TestProductComment_SetScoring(t *testing.T) {
	comment, err := NewProductComment(1, 2, 3, "")
	require.NoError(t, err)

	require.NoError(t, comment.SetScoring(5))
	assert.Error(t, comment.SetScoring(6))
	assert.Error(t, comment.SetScoring(0))
	assert.Equal(t, 5, comment.Scoring)
}

func TestProductVariant(t *testing.T) {
	t.Run("defaults to non-negative stock", func(t *testing.T) {
		variant, err := NewProductVariant(1, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, variant.Quantity)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewProductVariant(1, -1)

		assert.Error(t, err)
	})

	t.Run("adjusts stock with floor", func(t *testing.T) {
		variant, err := NewProductVariant(1, 2)
		require.NoError(t, err)

		require.NoError(t, variant.AdjustQuantity(3))
		assert.Equal(t, 5, variant.Quantity)

		assert.Error(t, variant.AdjustQuantity(-6))
		assert.Equal(t, 5, variant.Quantity)
	})
}

func TestCategoryTree(t *testing.T) {
	t.Run("creates root and subcategory", func(t *testing.T) {
		root, err := NewProductCategory("electronics")
		require.NoError(t, err)
		assert.True(t, root.IsRoot())

		child, err := NewSubcategory("keyboards", 1)
		require.NoError(t, err)
		assert.False(t, child.IsRoot())
		assert.Equal(t, int64(1), *child.ParentID)
	})

	t.Run("rejects self parent", func(t *testing.T) {
		category, err := NewProductCategory("electronics")
		require.NoError(t, err)
		category.ID = 7

		assert.Error(t, category.SetParent(7))
		require.NoError(t, category.SetParent(3))
		category.ClearParent()
		assert.True(t, category.IsRoot())
	})
}
