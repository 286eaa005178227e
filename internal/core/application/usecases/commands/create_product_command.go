package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrPriceIsInvalid        = errors.New("price must not be negative")
)

// CreateProductCommand represents a request to add a catalog product. When a
// restaurant name is given the product is attached to that restaurant's menu.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Context
	productID      kernel.UUID
	name           string
	description    string
	price          float64
	category       string
	restaurantName string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// The restaurant name may be empty for an unattached product.
func NewCreateProductCommand(
	act actor.Context,
	productID kernel.UUID,
	name, description string,
	price float64,
	category, restaurantName string,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setActor(act),
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	productCommand.description = description
	productCommand.category = category
	productCommand.restaurantName = restaurantName
	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Actor returns the acting admin's context.
func (c CreateProductCommand) Actor() actor.Context {
	return c.actor
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the catalog price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// Category returns the product category.
func (c CreateProductCommand) Category() string {
	return c.category
}

// RestaurantName returns the owning restaurant's name, or "" when unattached.
func (c CreateProductCommand) RestaurantName() string {
	return c.restaurantName
}

func (c *CreateProductCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
