package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents a request to tombstone an account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	actor  actor.Context
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to tombstone the given account.
func NewDeleteUserCommand(act actor.Context, userID kernel.UUID) (DeleteUserCommand, error) {
	userCommand := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setActor(act),
		userCommand.setUserID(userID),
	); err != nil {
		return DeleteUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// Actor returns the acting user's context.
func (c DeleteUserCommand) Actor() actor.Context {
	return c.actor
}

// UserID returns the identifier of the account to tombstone.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeleteUserCommand) setActor(act actor.Context) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *DeleteUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
