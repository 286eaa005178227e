// Package restaurantrepo persists restaurant aggregates. The menu product
// names and cuisine categories are denormalized into text[] columns, and the
// popularity counter is mutated only through relative SQL updates so
// concurrent order dispatches never lose increments.
package restaurantrepo

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/restaurant"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates. The name carries a unique index because orders and products
// reference restaurants by name.
type RestaurantDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"uniqueIndex"`
	Address      int
	Categories   pq.StringArray `gorm:"type:text[]"`
	ProductNames pq.StringArray `gorm:"type:text[]"`
	Popularity   int
	AdminID      uuid.UUID `gorm:"type:uuid;index"`
	IsDeleted    bool      `gorm:"index"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Address:      aggregate.Address(),
		Categories:   aggregate.Categories(),
		ProductNames: aggregate.ProductNames(),
		Popularity:   aggregate.Popularity(),
		AdminID:      aggregate.AdminID().Bytes(),
		IsDeleted:    aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO back to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	adminID, err := kernel.UUIDFromBytes(dto.AdminID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id,
		dto.Name,
		dto.Address,
		dto.Categories,
		dto.ProductNames,
		dto.Popularity,
		adminID,
		dto.IsDeleted,
	)
}
