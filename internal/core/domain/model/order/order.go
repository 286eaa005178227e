package order

import (
	"errors"
	"time"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoLineItems is returned when an order would end up without any priced
	// line items. Persisted orders always carry at least one.
	ErrNoLineItems = errors.New("order must contain at least one line item")

	// ErrOrderIsDeleted is returned when a tombstoned order is mutated.
	ErrOrderIsDeleted = errors.New("order is deleted")
)

// Order is the aggregate root of the order lifecycle engine. It owns the status
// state machine and the priced line-item snapshot.
//
// Invariants:
//   - total always equals the sum of the line items' totals
//   - the courier is set exactly when status is Accepted or later
//   - line items are never empty
//   - customer, restaurant reference and creation time are immutable
//   - a tombstoned order accepts no further mutation
//
// Orders reference their restaurant by name, the restaurant's natural key.
// Restaurant names are immutable after creation, so the reference cannot dangle
// through renames.
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	courierID      *kernel.UUID
	restaurantName string
	status         Status
	lineItems      []LineItem
	total          float64
	createdAt      time.Time
	deleted        bool

	isConstructed bool
}

// NewOrder creates an order in Created status for the given customer.
// The line items must already be priced (see services.PricingResolver) and
// non-empty; the total is derived from them.
func NewOrder(id, customerID kernel.UUID, restaurantName string, lineItems []LineItem) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantName(restaurantName),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. It re-validates the
// status/courier consistency rules and recomputes the total from the restored
// line items so the total invariant holds by construction.
func RestoreOrder(
	id, customerID kernel.UUID,
	courierID *kernel.UUID,
	restaurantName string,
	status Status,
	lineItems []LineItem,
	createdAt time.Time,
	deleted bool,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		status:        status,
		courierID:     courierID,
		createdAt:     createdAt,
		deleted:       deleted,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantName(restaurantName),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier. Immutable.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Courier returns the assigned courier's ID, or nil before acceptance.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// RestaurantName returns the natural-key reference to the restaurant.
func (o *Order) RestaurantName() string {
	return o.restaurantName
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns a copy of the priced line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Total returns the sum of the line items' totals.
func (o *Order) Total() float64 {
	return o.total
}

// CreatedAt returns the immutable creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsDeleted reports whether the order is tombstoned.
func (o *Order) IsDeleted() bool {
	return o.deleted
}

// Amend replaces the restaurant reference and the priced line items.
// Allowed only while the order is in Created status; the total is recomputed.
func (o *Order) Amend(restaurantName string, lineItems []LineItem) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	if err := o.status.ValidateAmend(); err != nil {
		return err
	}

	if err := errors.Join(
		o.setRestaurantName(restaurantName),
		o.setLineItems(lineItems),
	); err != nil {
		return err
	}

	return nil
}

// Send moves the order from Created to Sent. The restaurant popularity
// increment that accompanies this transition is applied by the caller within
// the same transaction.
func (o *Order) Send() error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	if o.status != Created {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(),
			errors.New("only Created orders can be sent"),
		)
	}

	o.status = Sent
	return nil
}

// Accept moves the order from Sent to Accepted and assigns the courier.
func (o *Order) Accept(courierID kernel.UUID) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.status != Sent {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(),
			errors.New("only Sent orders can be accepted"),
		)
	}

	o.status = Accepted
	o.courierID = &courierID
	return nil
}

// AdvanceToNext performs the generic next-stage transition: it computes the
// successor of the current status and moves there. Successors that have their
// own entry action (Sent, Accepted) are rejected so callers cannot bypass the
// send and accept flows.
//
// Returns the status reached, so callers can key the matching lifecycle
// notification off it.
func (o *Order) AdvanceToNext() (Status, error) {
	if err := o.ensureMutable(); err != nil {
		return Unknown, err
	}

	next, err := o.status.Next()
	if err != nil {
		return Unknown, err
	}

	if next == Sent || next == Accepted {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(o.status.String(), ErrStageRequiresDedicatedAction)
	}

	o.status = next
	return next, nil
}

// MarkDeleted tombstones the order. Orders are never physically erased;
// subsequent reads exclude tombstoned rows.
func (o *Order) MarkDeleted() error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	o.deleted = true
	return nil
}

func (o *Order) ensureMutable() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.deleted {
		return ErrOrderIsDeleted
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantName(restaurantName string) error {
	if restaurantName == "" {
		return errs.NewValueIsRequiredError("restaurantName")
	}
	o.restaurantName = restaurantName
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrNoLineItems
	}

	total := 0.0
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
		total += li.LineTotal()
	}

	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	o.total = total
	return nil
}
