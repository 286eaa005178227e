package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/core/domain/services"
	"bitebox/internal/pkg/errs"
)

func newActor(t *testing.T, id kernel.UUID, role user.Role, owned ...string) actor.Context {
	t.Helper()

	act, err := actor.NewContext(id, role, owned)
	require.NoError(t, err)

	return act
}

func newPolicyOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	lineItem, err := order.NewLineItem("pencil", 1, 3)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, "Paper Place", []order.LineItem{lineItem})
	require.NoError(t, err)

	return o
}

func acceptedPolicyOrder(t *testing.T, customerID, courierID kernel.UUID) *order.Order {
	t.Helper()

	o := newPolicyOrder(t, customerID)
	require.NoError(t, o.Send())
	require.NoError(t, o.Accept(courierID))

	return o
}

func TestAccessPolicyCustomerOperations(t *testing.T) {
	policy := services.NewAccessPolicy()
	customerID := kernel.NewUUID()
	o := newPolicyOrder(t, customerID)

	owner := newActor(t, customerID, user.RoleClient)
	stranger := newActor(t, kernel.NewUUID(), user.RoleClient)

	t.Run("customer may amend and send", func(t *testing.T) {
		assert.NoError(t, policy.CanAmendOrder(owner, o))
		assert.NoError(t, policy.CanSendOrder(owner, o))
	})

	t.Run("stranger may not amend or send", func(t *testing.T) {
		assert.ErrorIs(t, policy.CanAmendOrder(stranger, o), errs.ErrUnauthorized)
		assert.ErrorIs(t, policy.CanSendOrder(stranger, o), errs.ErrUnauthorized)
	})
}

func TestAccessPolicyCanAcceptOrder(t *testing.T) {
	policy := services.NewAccessPolicy()
	o := newPolicyOrder(t, kernel.NewUUID())

	t.Run("courier may accept", func(t *testing.T) {
		courier := newActor(t, kernel.NewUUID(), user.RoleCourier)

		assert.NoError(t, policy.CanAcceptOrder(courier, o))
	})

	t.Run("client may not accept", func(t *testing.T) {
		client := newActor(t, kernel.NewUUID(), user.RoleClient)

		assert.ErrorIs(t, policy.CanAcceptOrder(client, o), errs.ErrUnauthorized)
	})
}

func TestAccessPolicyCanAdvanceOrder(t *testing.T) {
	policy := services.NewAccessPolicy()
	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	t.Run("owning admin hands over an accepted order", func(t *testing.T) {
		o := acceptedPolicyOrder(t, customerID, courierID)
		admin := newActor(t, kernel.NewUUID(), user.RoleAdmin, "Paper Place")

		assert.NoError(t, policy.CanAdvanceOrder(admin, o))
	})

	t.Run("non-owning admin may not hand over", func(t *testing.T) {
		o := acceptedPolicyOrder(t, customerID, courierID)
		admin := newActor(t, kernel.NewUUID(), user.RoleAdmin, "Other Place")

		assert.ErrorIs(t, policy.CanAdvanceOrder(admin, o), errs.ErrUnauthorized)
	})

	t.Run("assigned courier may not hand over", func(t *testing.T) {
		o := acceptedPolicyOrder(t, customerID, courierID)
		courier := newActor(t, courierID, user.RoleCourier)

		assert.ErrorIs(t, policy.CanAdvanceOrder(courier, o), errs.ErrUnauthorized)
	})

	t.Run("assigned courier advances the later legs", func(t *testing.T) {
		o := acceptedPolicyOrder(t, customerID, courierID)
		_, err := o.AdvanceToNext()
		require.NoError(t, err)
		courier := newActor(t, courierID, user.RoleCourier)

		assert.NoError(t, policy.CanAdvanceOrder(courier, o))
	})

	t.Run("other courier may not advance the later legs", func(t *testing.T) {
		o := acceptedPolicyOrder(t, customerID, courierID)
		_, err := o.AdvanceToNext()
		require.NoError(t, err)
		other := newActor(t, kernel.NewUUID(), user.RoleCourier)

		assert.ErrorIs(t, policy.CanAdvanceOrder(other, o), errs.ErrUnauthorized)
	})
}

func TestAccessPolicyCanDeleteOrder(t *testing.T) {
	policy := services.NewAccessPolicy()
	customerID := kernel.NewUUID()
	o := newPolicyOrder(t, customerID)

	t.Run("customer may delete", func(t *testing.T) {
		assert.NoError(t, policy.CanDeleteOrder(newActor(t, customerID, user.RoleClient), o))
	})

	t.Run("admin may delete", func(t *testing.T) {
		assert.NoError(t, policy.CanDeleteOrder(newActor(t, kernel.NewUUID(), user.RoleAdmin), o))
	})

	t.Run("other client may not delete", func(t *testing.T) {
		stranger := newActor(t, kernel.NewUUID(), user.RoleClient)

		assert.ErrorIs(t, policy.CanDeleteOrder(stranger, o), errs.ErrUnauthorized)
	})
}

func TestAccessPolicyRestaurantScopes(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("owning admin passes", func(t *testing.T) {
		admin := newActor(t, kernel.NewUUID(), user.RoleAdmin, "Paper Place")

		assert.NoError(t, policy.CanViewRestaurantOrders(admin, "Paper Place"))
		assert.NoError(t, policy.CanManageRestaurant(admin, "Paper Place"))
	})

	t.Run("non-owner fails", func(t *testing.T) {
		admin := newActor(t, kernel.NewUUID(), user.RoleAdmin, "Other Place")

		assert.ErrorIs(t, policy.CanViewRestaurantOrders(admin, "Paper Place"), errs.ErrUnauthorized)
		assert.ErrorIs(t, policy.CanManageRestaurant(admin, "Paper Place"), errs.ErrUnauthorized)
	})

	t.Run("non-admin fails", func(t *testing.T) {
		client := newActor(t, kernel.NewUUID(), user.RoleClient, "Paper Place")

		assert.ErrorIs(t, policy.CanManageRestaurant(client, "Paper Place"), errs.ErrUnauthorized)
	})
}

func TestAccessPolicyCanManageUser(t *testing.T) {
	policy := services.NewAccessPolicy()
	accountID := kernel.NewUUID()

	t.Run("account owner passes", func(t *testing.T) {
		owner := newActor(t, accountID, user.RoleClient)

		assert.NoError(t, policy.CanManageUser(owner, accountID))
	})

	t.Run("admin passes", func(t *testing.T) {
		admin := newActor(t, kernel.NewUUID(), user.RoleAdmin)

		assert.NoError(t, policy.CanManageUser(admin, accountID))
	})

	t.Run("stranger fails", func(t *testing.T) {
		stranger := newActor(t, kernel.NewUUID(), user.RoleClient)

		assert.ErrorIs(t, policy.CanManageUser(stranger, accountID), errs.ErrUnauthorized)
	})
}
