package user

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an account in the system. From the order engine's perspective it is
// mostly read-only: the engine checks the role of acting couriers and resolves
// customer addresses for delivery notifications. Restaurant ownership is
// tracked as a set of restaurant names, the restaurant natural key.
//
// The address is an integer position; distances are plain numeric differences.
type User struct {
	id                   kernel.UUID
	name                 string
	email                string
	address              int
	role                 Role
	ownedRestaurantNames []string
	deleted              bool

	isConstructed bool
}

// NewUser creates a user account with the given role.
func NewUser(id kernel.UUID, name, email string, address int, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.address = address
	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(
	id kernel.UUID,
	name, email string,
	address int,
	role Role,
	ownedRestaurantNames []string,
	deleted bool,
) (*User, error) {
	u, err := NewUser(id, name, email, address, role)
	if err != nil {
		return nil, err
	}

	u.ownedRestaurantNames = slices.Clone(ownedRestaurantNames)
	u.deleted = deleted
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the contact email.
func (u *User) Email() string {
	return u.email
}

// Address returns the user's integer address position.
func (u *User) Address() int {
	return u.address
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// OwnedRestaurantNames returns a copy of the restaurant names this user administers.
func (u *User) OwnedRestaurantNames() []string {
	return slices.Clone(u.ownedRestaurantNames)
}

// IsDeleted reports whether the account is tombstoned.
func (u *User) IsDeleted() bool {
	return u.deleted
}

// GrantRestaurant adds a restaurant name to the user's owned set.
// Called when an admin creates a restaurant. Idempotent.
func (u *User) GrantRestaurant(name string) error {
	if err := u.Validate(); err != nil {
		return err
	}

	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}

	if !slices.Contains(u.ownedRestaurantNames, name) {
		u.ownedRestaurantNames = append(u.ownedRestaurantNames, name)
	}
	return nil
}

// Rename changes the display name.
func (u *User) Rename(name string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return u.setName(name)
}

// ChangeEmail updates the contact email.
func (u *User) ChangeEmail(email string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return u.setEmail(email)
}

// ChangeAddress moves the user to a new address position.
func (u *User) ChangeAddress(address int) error {
	if err := u.Validate(); err != nil {
		return err
	}
	u.address = address
	return nil
}

// MarkDeleted tombstones the account.
func (u *User) MarkDeleted() error {
	if err := u.Validate(); err != nil {
		return err
	}
	u.deleted = true
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
