// Package productrepo persists catalog products.
package productrepo

import (
	"github.com/google/uuid"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting products.
// Products are looked up by restaurant name for pricing, so that column is
// indexed together with name for the menu query.
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"index"`
	Description    string
	Price          float64
	Category       string
	RestaurantName string `gorm:"index"`
	IsDeleted      bool   `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Description:    aggregate.Description(),
		Price:          aggregate.Price(),
		Category:       aggregate.Category(),
		RestaurantName: aggregate.RestaurantName(),
		IsDeleted:      aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO back to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.Category,
		dto.RestaurantName,
		dto.IsDeleted,
	)
}
