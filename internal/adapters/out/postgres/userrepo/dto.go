// Package userrepo persists user accounts. Roles are stored in their wire
// representation ("client", "courier", "admin") so rows stay readable and
// query joins can filter on role without a lookup table.
package userrepo

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string
	Email                string `gorm:"index"`
	Address              int
	Role                 string         `gorm:"index"`
	OwnedRestaurantNames pq.StringArray `gorm:"type:text[]"`
	IsDeleted            bool           `gorm:"index"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:                   aggregate.ID().Bytes(),
		Name:                 aggregate.Name(),
		Email:                aggregate.Email(),
		Address:              aggregate.Address(),
		Role:                 aggregate.Role().String(),
		OwnedRestaurantNames: aggregate.OwnedRestaurantNames(),
		IsDeleted:            aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO back to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Name,
		dto.Email,
		dto.Address,
		role,
		dto.OwnedRestaurantNames,
		dto.IsDeleted,
	)
}
