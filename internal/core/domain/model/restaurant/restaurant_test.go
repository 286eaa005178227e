package restaurant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/restaurant"
	"bitebox/internal/pkg/errs"
)

func newTestRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()

	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(),
		"Pasta Place",
		42,
		[]string{"italian"},
		kernel.NewUUID(),
	)
	require.NoError(t, err)

	return r
}

func TestNewRestaurant(t *testing.T) {
	t.Run("creates restaurant with valid params", func(t *testing.T) {
		id := kernel.NewUUID()
		adminID := kernel.NewUUID()

		r, err := restaurant.NewRestaurant(id, "Pasta Place", 42, []string{"italian", "pizza"}, adminID)

		require.NoError(t, err)
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, "Pasta Place", r.Name())
		assert.Equal(t, 42, r.Address())
		assert.Equal(t, []string{"italian", "pizza"}, r.Categories())
		assert.Empty(t, r.ProductNames())
		assert.Equal(t, 0, r.Popularity())
		assert.True(t, r.AdminID().IsEqual(adminID))
		assert.False(t, r.IsDeleted())
	})

	t.Run("rejects short name", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.NewUUID(), "ab", 1, []string{"italian"}, kernel.NewUUID())

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty categories", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.NewUUID(), "Pasta Place", 1, nil, kernel.NewUUID())

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero admin id", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.NewUUID(), "Pasta Place", 1, []string{"italian"}, kernel.UUID{})

		assert.Error(t, err)
	})
}

func TestRestoreRestaurant(t *testing.T) {
	t.Run("restores full state", func(t *testing.T) {
		id := kernel.NewUUID()
		adminID := kernel.NewUUID()

		r, err := restaurant.RestoreRestaurant(
			id, "Pasta Place", 42,
			[]string{"italian"}, []string{"carbonara", "margherita"},
			7, adminID, true,
		)

		require.NoError(t, err)
		assert.Equal(t, []string{"carbonara", "margherita"}, r.ProductNames())
		assert.Equal(t, 7, r.Popularity())
		assert.True(t, r.IsDeleted())
	})

	t.Run("rejects negative popularity", func(t *testing.T) {
		_, err := restaurant.RestoreRestaurant(
			kernel.NewUUID(), "Pasta Place", 42,
			[]string{"italian"}, nil,
			-1, kernel.NewUUID(), false,
		)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestaurantMenuSync(t *testing.T) {
	t.Run("add product is idempotent", func(t *testing.T) {
		r := newTestRestaurant(t)

		require.NoError(t, r.AddProduct("carbonara"))
		require.NoError(t, r.AddProduct("carbonara"))

		assert.Equal(t, []string{"carbonara"}, r.ProductNames())
	})

	t.Run("add product rejects empty name", func(t *testing.T) {
		r := newTestRestaurant(t)

		assert.ErrorIs(t, r.AddProduct(""), errs.ErrValueIsRequired)
	})

	t.Run("remove product deletes matching name", func(t *testing.T) {
		r := newTestRestaurant(t)
		require.NoError(t, r.AddProduct("carbonara"))
		require.NoError(t, r.AddProduct("margherita"))

		require.NoError(t, r.RemoveProduct("carbonara"))

		assert.Equal(t, []string{"margherita"}, r.ProductNames())
	})

	t.Run("remove product is a no-op for unknown name", func(t *testing.T) {
		r := newTestRestaurant(t)
		require.NoError(t, r.AddProduct("carbonara"))

		require.NoError(t, r.RemoveProduct("unknown"))

		assert.Equal(t, []string{"carbonara"}, r.ProductNames())
	})

	t.Run("rename product replaces menu entry in place", func(t *testing.T) {
		r := newTestRestaurant(t)
		require.NoError(t, r.AddProduct("carbonara"))
		require.NoError(t, r.AddProduct("margherita"))

		require.NoError(t, r.RenameProduct("carbonara", "carbonara deluxe"))

		assert.Equal(t, []string{"carbonara deluxe", "margherita"}, r.ProductNames())
	})
}

func TestRestaurantPopularity(t *testing.T) {
	t.Run("increments and decrements", func(t *testing.T) {
		r := newTestRestaurant(t)

		require.NoError(t, r.IncrementPopularity())
		require.NoError(t, r.IncrementPopularity())
		require.NoError(t, r.DecrementPopularity())

		assert.Equal(t, 1, r.Popularity())
	})

	t.Run("decrement floors at zero", func(t *testing.T) {
		r := newTestRestaurant(t)

		require.NoError(t, r.DecrementPopularity())

		assert.Equal(t, 0, r.Popularity())
	})
}

func TestRestaurantMutations(t *testing.T) {
	t.Run("change address", func(t *testing.T) {
		r := newTestRestaurant(t)

		require.NoError(t, r.ChangeAddress(99))

		assert.Equal(t, 99, r.Address())
	})

	t.Run("change categories rejects empty list", func(t *testing.T) {
		r := newTestRestaurant(t)

		assert.ErrorIs(t, r.ChangeCategories(nil), errs.ErrValueIsRequired)
	})

	t.Run("mark deleted", func(t *testing.T) {
		r := newTestRestaurant(t)

		require.NoError(t, r.MarkDeleted())

		assert.True(t, r.IsDeleted())
	})
}

func TestRestaurantValidate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var r restaurant.Restaurant

		assert.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})

	t.Run("nil pointer is not constructed", func(t *testing.T) {
		var r *restaurant.Restaurant

		assert.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}
