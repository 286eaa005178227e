package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change a catalog product.
// Nil fields are left unchanged. Renaming propagates to the owning
// restaurant's menu list; repricing never touches already-priced order lines.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Context
	productID   kernel.UUID
	name        *string
	description *string
	price       *float64
	category    *string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update the given product.
// At least one field must be set.
func NewUpdateProductCommand(
	act actor.Context,
	productID kernel.UUID,
	name, description *string,
	price *float64,
	category *string,
) (UpdateProductCommand, error) {
	productCommand := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setActor(act),
		productCommand.setProductID(productID),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	if name == nil && description == nil && price == nil && category == nil {
		return UpdateProductCommand{}, ErrNothingToUpdate
	}

	if name != nil && *name == "" {
		return UpdateProductCommand{}, ErrProductNameIsRequired
	}

	if price != nil && *price < 0 {
		return UpdateProductCommand{}, ErrPriceIsInvalid
	}

	productCommand.name = name
	productCommand.description = description
	productCommand.price = price
	productCommand.category = category
	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// Actor returns the acting admin's context.
func (c UpdateProductCommand) Actor() actor.Context {
	return c.actor
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new name, or nil when unchanged.
func (c UpdateProductCommand) Name() *string {
	return c.name
}

// Description returns the new description, or nil when unchanged.
func (c UpdateProductCommand) Description() *string {
	return c.description
}

// Price returns the new price, or nil when unchanged.
func (c UpdateProductCommand) Price() *float64 {
	return c.price
}

// Category returns the new category, or nil when unchanged.
func (c UpdateProductCommand) Category() *string {
	return c.category
}

func (c *UpdateProductCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
