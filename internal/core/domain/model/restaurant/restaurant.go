package restaurant

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/errs"
)

const minNameLength = 3

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
	// not created through NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is identified by its unique name, which orders and products use
// as a natural-key foreign reference. The name is immutable after creation so
// those references cannot dangle.
//
// The popularity counter is a derived aggregate: it is incremented when an
// order is sent and decremented when a sent-or-later order is deleted. Only
// the order command handlers mutate it, never a generic field update; the
// counter never goes below zero.
type Restaurant struct {
	id           kernel.UUID
	name         string
	address      int
	categories   []string
	productNames []string
	popularity   int
	adminID      kernel.UUID
	deleted      bool

	isConstructed bool
}

// NewRestaurant creates a restaurant administered by the given admin user.
func NewRestaurant(id kernel.UUID, name string, address int, categories []string, adminID kernel.UUID) (*Restaurant, error) {
	r := &Restaurant{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setCategories(categories),
		r.setAdminID(adminID),
	); err != nil {
		return nil, err
	}

	r.address = address
	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	address int,
	categories, productNames []string,
	popularity int,
	adminID kernel.UUID,
	deleted bool,
) (*Restaurant, error) {
	if popularity < 0 {
		return nil, errs.NewValueIsOutOfRangeError("popularity", popularity, 0, nil)
	}

	r, err := NewRestaurant(id, name, address, categories, adminID)
	if err != nil {
		return nil, err
	}

	r.productNames = slices.Clone(productNames)
	r.popularity = popularity
	r.deleted = deleted
	return r, nil
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the unique, immutable restaurant name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the restaurant's integer address position.
func (r *Restaurant) Address() int {
	return r.address
}

// Categories returns a copy of the cuisine categories.
func (r *Restaurant) Categories() []string {
	return slices.Clone(r.categories)
}

// ProductNames returns a copy of the denormalized menu product names.
func (r *Restaurant) ProductNames() []string {
	return slices.Clone(r.productNames)
}

// Popularity returns the dispatched-order counter.
func (r *Restaurant) Popularity() int {
	return r.popularity
}

// AdminID returns the administering user's identifier.
func (r *Restaurant) AdminID() kernel.UUID {
	return r.adminID
}

// IsDeleted reports whether the restaurant is tombstoned.
func (r *Restaurant) IsDeleted() bool {
	return r.deleted
}

// ChangeAddress updates the restaurant's address position.
func (r *Restaurant) ChangeAddress(address int) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.address = address
	return nil
}

// ChangeCategories replaces the cuisine categories.
func (r *Restaurant) ChangeCategories(categories []string) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return r.setCategories(categories)
}

// AddProduct adds a product name to the denormalized menu list. Idempotent.
// Kept in sync by the product command handlers inside the same transaction as
// the product write.
func (r *Restaurant) AddProduct(name string) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}

	if !slices.Contains(r.productNames, name) {
		r.productNames = append(r.productNames, name)
	}
	return nil
}

// RemoveProduct removes a product name from the menu list.
func (r *Restaurant) RemoveProduct(name string) error {
	if err := r.Validate(); err != nil {
		return err
	}

	r.productNames = slices.DeleteFunc(r.productNames, func(n string) bool {
		return n == name
	})
	return nil
}

// RenameProduct replaces a product name in the menu list when the product
// itself is renamed.
func (r *Restaurant) RenameProduct(oldName, newName string) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if newName == "" {
		return errs.NewValueIsRequiredError("product name")
	}

	for i, n := range r.productNames {
		if n == oldName {
			r.productNames[i] = newName
		}
	}
	return nil
}

// IncrementPopularity counts one more dispatched order.
func (r *Restaurant) IncrementPopularity() error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.popularity++
	return nil
}

// DecrementPopularity reverses one dispatched-order increment. The counter
// floors at zero; decrementing an already-zero counter is a no-op.
func (r *Restaurant) DecrementPopularity() error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.popularity > 0 {
		r.popularity--
	}
	return nil
}

// MarkDeleted tombstones the restaurant.
func (r *Restaurant) MarkDeleted() error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.deleted = true
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if len(strings.TrimSpace(name)) < minNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name",
			fmt.Errorf("%q is shorter than %d characters", name, minNameLength),
		)
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCategories(categories []string) error {
	if len(categories) == 0 {
		return errs.NewValueIsRequiredError("categories")
	}
	r.categories = slices.Clone(categories)
	return nil
}

func (r *Restaurant) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	r.adminID = adminID
	return nil
}
