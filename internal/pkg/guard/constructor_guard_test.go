package guard_test

import (
	"errors"
	"testing"

	"bitebox/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_validates_clean", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedErr := errors.New("order not constructed")

		// When
		err := g.Validate(expectedErr)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedErr, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("guard_enforces_constructor_usage_in_a_value_object", func(t *testing.T) {
		type lineItem struct {
			name  string
			guard guard.ConstructorGuard
		}

		errNotConstructed := errors.New("lineItem must be created via newLineItem")

		newLineItem := func(name string) lineItem {
			return lineItem{name: name, guard: guard.NewConstructorGuard()}
		}

		built := newLineItem("pencil")
		require.NoError(t, built.guard.Validate(errNotConstructed))

		var zero lineItem
		assert.Equal(t, errNotConstructed, zero.guard.Validate(errNotConstructed))
	})
}
