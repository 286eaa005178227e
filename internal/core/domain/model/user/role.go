package user

import (
	"fmt"

	"bitebox/internal/pkg/errs"
)

// Role classifies what a user may do in the order lifecycle: clients create and
// send orders, couriers accept and deliver them, admins run restaurants and
// confirm pickups.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleClient is the default role for ordering customers.
	RoleClient

	// RoleCourier marks users allowed to accept and deliver orders.
	RoleCourier

	// RoleAdmin marks restaurant administrators.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleClient:  "client",
		RoleCourier: "courier",
		RoleAdmin:   "admin",
	}
}

// RoleFromString parses the wire representation ("client", "courier", "admin").
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role value is one of client, courier or admin.
func (r Role) Validate() error {
	if r != RoleClient && r != RoleCourier && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
