package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/pkg/errs"
)

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    user.Role
		wantErr bool
	}{
		{input: "client", want: user.RoleClient},
		{input: "courier", want: user.RoleCourier},
		{input: "admin", want: user.RoleAdmin},
		{input: "superuser", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := user.RoleFromString(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestNewUser(t *testing.T) {
	t.Run("creates user with valid params", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "Alice", "alice@example.com", 10, user.RoleClient)

		require.NoError(t, err)
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, 10, u.Address())
		assert.Equal(t, user.RoleClient, u.Role())
		assert.Empty(t, u.OwnedRestaurantNames())
		assert.False(t, u.IsDeleted())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "  ", "alice@example.com", 10, user.RoleClient)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Alice", "not-an-email", 10, user.RoleClient)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Alice", "alice@example.com", 10, user.RoleUnknown)

		assert.Error(t, err)
	})
}

func TestUserGrantRestaurant(t *testing.T) {
	t.Run("grant is idempotent", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Bob", "bob@example.com", 5, user.RoleAdmin)
		require.NoError(t, err)

		require.NoError(t, u.GrantRestaurant("Pasta Place"))
		require.NoError(t, u.GrantRestaurant("Pasta Place"))

		assert.Equal(t, []string{"Pasta Place"}, u.OwnedRestaurantNames())
	})

	t.Run("grant rejects empty name", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Bob", "bob@example.com", 5, user.RoleAdmin)
		require.NoError(t, err)

		assert.ErrorIs(t, u.GrantRestaurant(""), errs.ErrValueIsRequired)
	})
}

func TestUserProfileUpdates(t *testing.T) {
	newUser := func(t *testing.T) *user.User {
		t.Helper()

		u, err := user.NewUser(kernel.NewUUID(), "Alice", "alice@example.com", 10, user.RoleClient)
		require.NoError(t, err)

		return u
	}

	t.Run("rename", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.Rename("Alice Cooper"))
		assert.Equal(t, "Alice Cooper", u.Name())
	})

	t.Run("rename rejects blank name", func(t *testing.T) {
		u := newUser(t)

		assert.ErrorIs(t, u.Rename("  "), errs.ErrValueIsRequired)
		assert.Equal(t, "Alice", u.Name())
	})

	t.Run("change email", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.ChangeEmail("alice@bitebox.dev"))
		assert.Equal(t, "alice@bitebox.dev", u.Email())
	})

	t.Run("change email rejects malformed address", func(t *testing.T) {
		u := newUser(t)

		assert.ErrorIs(t, u.ChangeEmail("not-an-email"), errs.ErrValueIsInvalid)
		assert.Equal(t, "alice@example.com", u.Email())
	})

	t.Run("change address", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.ChangeAddress(25))
		assert.Equal(t, 25, u.Address())
	})
}

func TestUserMarkDeleted(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Alice", "alice@example.com", 10, user.RoleClient)
	require.NoError(t, err)

	require.NoError(t, u.MarkDeleted())
	assert.True(t, u.IsDeleted())
}

func TestRestoreUser(t *testing.T) {
	u, err := user.RestoreUser(
		kernel.NewUUID(), "Bob", "bob@example.com", 5,
		user.RoleAdmin, []string{"Pasta Place"}, true,
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"Pasta Place"}, u.OwnedRestaurantNames())
	assert.True(t, u.IsDeleted())
}
