package commands

import (
	"errors"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrUserNameIsRequired = errors.New("user name is required")
)

// CreateUserCommand represents a request to register a user account.
// Registration is open, so the command carries no actor.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	name    string
	email   string
	address int
	role    user.Role

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user account.
func NewCreateUserCommand(
	userID kernel.UUID,
	name, email string,
	address int,
	role user.Role,
) (CreateUserCommand, error) {
	userCommand := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setName(name),
		userCommand.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	userCommand.email = email
	userCommand.address = address
	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name.
func (c CreateUserCommand) Name() string {
	return c.name
}

// Email returns the contact email.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Address returns the integer address position.
func (c CreateUserCommand) Address() int {
	return c.address
}

// Role returns the account role.
func (c CreateUserCommand) Role() user.Role {
	return c.role
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setName(name string) error {
	if name == "" {
		return ErrUserNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
