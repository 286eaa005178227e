package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/model/product"
	"bitebox/internal/core/domain/model/restaurant"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/core/domain/services"
)

const testRestaurantName = "Paper Place"

func testActor(t *testing.T, id kernel.UUID, role user.Role, owned ...string) actor.Context {
	t.Helper()

	act, err := actor.NewContext(id, role, owned)
	require.NoError(t, err)

	return act
}

func testRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()

	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), testRestaurantName, 42, []string{"stationery"}, kernel.NewUUID(),
	)
	require.NoError(t, err)

	return r
}

func testCatalog(t *testing.T) []*product.Product {
	t.Helper()

	pencil, err := product.NewProduct(kernel.NewUUID(), "pencil", "", 3, "stationery", testRestaurantName)
	require.NoError(t, err)
	eraser, err := product.NewProduct(kernel.NewUUID(), "eraser", "", 1, "stationery", testRestaurantName)
	require.NoError(t, err)

	return []*product.Product{pencil, eraser}
}

func testCustomer(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()

	u, err := user.NewUser(id, "Alice", "alice@example.com", 10, user.RoleClient)
	require.NoError(t, err)

	return u
}

func testOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	lineItem, err := order.NewLineItem("pencil", 2, 6)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, testRestaurantName, []order.LineItem{lineItem})
	require.NoError(t, err)

	return o
}

func testRequestedItems() []services.RequestedItem {
	return []services.RequestedItem{
		{ProductName: "pencil", Quantity: 2},
		{ProductName: "eraser", Quantity: 1},
	}
}
