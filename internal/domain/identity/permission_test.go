package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_IsValid(t *testing.T) {
	for _, r := range Resources() {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, Resource("warehouses").IsValid())
	assert.False(t, Resource("").IsValid())
}

func TestAction_IsValid(t *testing.T) {
	assert.Len(t, Actions(), 19)
	for _, a := range Actions() {
		assert.True(t, a.IsValid(), string(a))
	}
	assert.False(t, Action("can_fly").IsValid())
}

func TestNewPermissionGroup(t *testing.T) {
	t.Run("creates group with description", func(t *testing.T) {
		group, err := NewPermissionGroup("catalog-admins", "manage the product catalog")

		require.NoError(t, err)
		assert.Equal(t, "catalog-admins", group.Name)
		require.NotNil(t, group.Description)
		assert.Equal(t, "manage the product catalog", *group.Description)
	})

	t.Run("description stays nil when empty", func(t *testing.T) {
		group, err := NewPermissionGroup("minimal", "")

		require.NoError(t, err)
		assert.Nil(t, group.Description)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewPermissionGroup("", "")

		assert.Error(t, err)
	})
}

func TestNewResourcePermission(t *testing.T) {
	t.Run("accepts enumerated resource", func(t *testing.T) {
		perm, err := NewResourcePermission(1, ResourceProducts)

		require.NoError(t, err)
		assert.Equal(t, ResourceProducts, perm.Resource)
	})

	t.Run("rejects unknown resource", func(t *testing.T) {
		_, err := NewResourcePermission(1, Resource("stars"))

		assert.Error(t, err)
	})
}

func TestNewActionPermission(t *testing.T) {
	t.Run("accepts enumerated action", func(t *testing.T) {
		perm, err := NewActionPermission(1, ActionBanUser)

		require.NoError(t, err)
		assert.Equal(t, ActionBanUser, perm.Action)
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		_, err := NewActionPermission(1, Action("can_teleport"))

		assert.Error(t, err)
	})
}
