package services

import (
	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/pkg/errs"
)

// AccessPolicy is a domain service that decides whether an actor may perform
// an order lifecycle operation. Authorization is evaluated in the core, not at
// the transport edge, so every entry point applies the same rules.
//
// Rules:
//   - Creation, amendment, dispatch and deletion belong to the order's customer.
//   - Acceptance requires the courier role.
//   - Advancing out of Accepted (handing the order to the courier) is done by
//     a restaurant-side admin; the later legs belong to the assigned courier.
//   - Platform admins may delete any order.
type AccessPolicy struct{}

// NewAccessPolicy creates an AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanAmendOrder permits only the order's customer to amend it.
func (p AccessPolicy) CanAmendOrder(act actor.Context, o *order.Order) error {
	if err := p.validate(act, o); err != nil {
		return err
	}

	if !act.ID().IsEqual(o.CustomerID()) {
		return errs.NewUnauthorizedError("amend order")
	}
	return nil
}

// CanSendOrder permits only the order's customer to dispatch it.
func (p AccessPolicy) CanSendOrder(act actor.Context, o *order.Order) error {
	if err := p.validate(act, o); err != nil {
		return err
	}

	if !act.ID().IsEqual(o.CustomerID()) {
		return errs.NewUnauthorizedError("send order")
	}
	return nil
}

// CanAcceptOrder permits only couriers to accept a dispatched order.
func (p AccessPolicy) CanAcceptOrder(act actor.Context, o *order.Order) error {
	if err := p.validate(act, o); err != nil {
		return err
	}

	if act.Role() != user.RoleCourier {
		return errs.NewUnauthorizedError("accept order")
	}
	return nil
}

// CanAdvanceOrder decides who may push the order to its next stage. Out of
// Accepted the restaurant hands the order over, so an admin owning the order's
// restaurant acts; out of Received and Arrived only the assigned courier acts.
func (p AccessPolicy) CanAdvanceOrder(act actor.Context, o *order.Order) error {
	if err := p.validate(act, o); err != nil {
		return err
	}

	switch o.Status() {
	case order.Accepted:
		if act.Role() == user.RoleAdmin && act.OwnsRestaurant(o.RestaurantName()) {
			return nil
		}
		return errs.NewUnauthorizedError("hand over order")
	default:
		courierID := o.Courier()
		if courierID != nil && act.ID().IsEqual(*courierID) {
			return nil
		}
		return errs.NewUnauthorizedError("advance order")
	}
}

// CanDeleteOrder permits the order's customer or a platform admin.
func (p AccessPolicy) CanDeleteOrder(act actor.Context, o *order.Order) error {
	if err := p.validate(act, o); err != nil {
		return err
	}

	if act.ID().IsEqual(o.CustomerID()) || act.Role() == user.RoleAdmin {
		return nil
	}
	return errs.NewUnauthorizedError("delete order")
}

// CanViewRestaurantOrders permits only an admin owning the restaurant to read
// its order dashboards and menu listing.
func (p AccessPolicy) CanViewRestaurantOrders(act actor.Context, restaurantName string) error {
	if err := act.Validate(); err != nil {
		return err
	}

	if act.Role() == user.RoleAdmin && act.OwnsRestaurant(restaurantName) {
		return nil
	}
	return errs.NewUnauthorizedError("view restaurant orders")
}

// CanManageRestaurant permits only an admin owning the restaurant to modify it
// or its products.
func (p AccessPolicy) CanManageRestaurant(act actor.Context, restaurantName string) error {
	if err := act.Validate(); err != nil {
		return err
	}

	if act.Role() == user.RoleAdmin && act.OwnsRestaurant(restaurantName) {
		return nil
	}
	return errs.NewUnauthorizedError("manage restaurant")
}

// CanManageUser permits the account owner or a platform admin to modify or
// delete an account.
func (p AccessPolicy) CanManageUser(act actor.Context, userID kernel.UUID) error {
	if err := act.Validate(); err != nil {
		return err
	}

	if act.ID().IsEqual(userID) || act.Role() == user.RoleAdmin {
		return nil
	}
	return errs.NewUnauthorizedError("manage user")
}

func (p AccessPolicy) validate(act actor.Context, o *order.Order) error {
	if err := act.Validate(); err != nil {
		return err
	}
	return o.Validate()
}
