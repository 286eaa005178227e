package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents a request to change an account's profile
// fields. Nil fields are left unchanged. The role is fixed at registration
// and cannot change.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Context
	userID  kernel.UUID
	name    *string
	email   *string
	address *int

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to update the given account.
// At least one field must be set.
func NewUpdateUserCommand(
	act actor.Context,
	userID kernel.UUID,
	name, email *string,
	address *int,
) (UpdateUserCommand, error) {
	userCommand := UpdateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setActor(act),
		userCommand.setUserID(userID),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	if name == nil && email == nil && address == nil {
		return UpdateUserCommand{}, ErrNothingToUpdate
	}

	userCommand.name = name
	userCommand.email = email
	userCommand.address = address
	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// Actor returns the acting user's context.
func (c UpdateUserCommand) Actor() actor.Context {
	return c.actor
}

// UserID returns the identifier of the account to update.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the new display name, or nil when unchanged.
func (c UpdateUserCommand) Name() *string {
	return c.name
}

// Email returns the new contact email, or nil when unchanged.
func (c UpdateUserCommand) Email() *string {
	return c.email
}

// Address returns the new address position, or nil when unchanged.
func (c UpdateUserCommand) Address() *int {
	return c.address
}

func (c *UpdateUserCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
