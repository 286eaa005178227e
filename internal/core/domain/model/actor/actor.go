package actor

import (
	"errors"
	"slices"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/pkg/guard"
)

// ErrContextIsNotConstructed is returned when a Context was not created
// through NewContext.
var ErrContextIsNotConstructed = errors.New("actor Context must be created via NewContext constructor")

// Context carries the acting user's identity, role and restaurant ownership
// into every core operation. It is built at the transport edge from the
// resolved user record and passed explicitly; the core never reads ambient
// session state.
type Context struct {
	id                   kernel.UUID
	role                 user.Role
	ownedRestaurantNames []string

	guard guard.ConstructorGuard
}

// NewContext creates an actor context for a resolved user.
func NewContext(id kernel.UUID, role user.Role, ownedRestaurantNames []string) (Context, error) {
	if err := id.Validate(); err != nil {
		return Context{}, err
	}

	if err := role.Validate(); err != nil {
		return Context{}, err
	}

	return Context{
		id:                   id,
		role:                 role,
		ownedRestaurantNames: slices.Clone(ownedRestaurantNames),
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// ContextForUser builds an actor context from a user aggregate.
func ContextForUser(u *user.User) (Context, error) {
	if err := u.Validate(); err != nil {
		return Context{}, err
	}
	return NewContext(u.ID(), u.Role(), u.OwnedRestaurantNames())
}

// Validate ensures the context was created through a constructor.
func (c Context) Validate() error {
	return c.guard.Validate(ErrContextIsNotConstructed)
}

// ID returns the acting user's identifier.
func (c Context) ID() kernel.UUID {
	return c.id
}

// Role returns the acting user's role.
func (c Context) Role() user.Role {
	return c.role
}

// OwnsRestaurant reports whether the actor administers the named restaurant.
func (c Context) OwnsRestaurant(name string) bool {
	return slices.Contains(c.ownedRestaurantNames, name)
}
