package queries

import (
	"errors"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/guard"
)

var ErrGetUserByIDQueryIsNotConstructed = errors.New(
	"GetUserByIDQuery must be created via NewGetUserByIDQuery constructor",
)

// GetUserByIDQuery retrieves a user account by its identifier.
type GetUserByIDQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserByIDQuery creates a query for the given user.
func NewGetUserByIDQuery(userID kernel.UUID) (GetUserByIDQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserByIDQuery{}, err
	}

	return GetUserByIDQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByIDQueryIsNotConstructed)
}

// UserID returns the identifier of the user to fetch.
func (q GetUserByIDQuery) UserID() kernel.UUID {
	return q.userID
}

// UserResponse represents a user account as returned by read operations.
type UserResponse struct {
	ID                   kernel.UUID
	Name                 string
	Email                string
	Address              int
	Role                 string
	OwnedRestaurantNames []string
}
