package product

import (
	"errors"
	"fmt"
	"strings"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry. It is the pricing source of truth at order
// creation and amendment time only: once a line item is priced, later price
// changes never re-price it. The restaurant reference is by name and optional
// (a product can exist outside any menu).
type Product struct {
	id             kernel.UUID
	name           string
	description    string
	price          float64
	category       string
	restaurantName string
	deleted        bool

	isConstructed bool
}

// NewProduct creates a catalog entry. Price must be non-negative.
func NewProduct(id kernel.UUID, name, description string, price float64, category, restaurantName string) (*Product, error) {
	p := &Product{
		restaurantName: restaurantName,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	name, description string,
	price float64,
	category, restaurantName string,
	deleted bool,
) (*Product, error) {
	p, err := NewProduct(id, name, description, price, category, restaurantName)
	if err != nil {
		return nil, err
	}

	p.deleted = deleted
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name used by line-item snapshots.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalog price.
func (p *Product) Price() float64 {
	return p.price
}

// Category returns the product category.
func (p *Product) Category() string {
	return p.category
}

// RestaurantName returns the owning restaurant's name, or "" when unattached.
func (p *Product) RestaurantName() string {
	return p.restaurantName
}

// IsDeleted reports whether the product is tombstoned.
func (p *Product) IsDeleted() bool {
	return p.deleted
}

// Rename changes the product name. The caller propagates the rename to the
// owning restaurant's menu list in the same transaction.
func (p *Product) Rename(name string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.setName(name)
}

// ChangeDescription updates the description.
func (p *Product) ChangeDescription(description string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.description = description
	return nil
}

// Reprice updates the catalog price. Already-priced line items keep their
// snapshot.
func (p *Product) Reprice(price float64) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.setPrice(price)
}

// ChangeCategory updates the category.
func (p *Product) ChangeCategory(category string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.setCategory(category)
}

// MarkDeleted tombstones the product, removing it from pricing lookups.
func (p *Product) MarkDeleted() error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.deleted = true
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}
