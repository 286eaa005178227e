package restaurantrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/model/restaurant"
	"bitebox/internal/pkg/errs"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing restaurant to the database.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByName retrieves a non-deleted restaurant by its unique name.
func (r *GormRestaurantRepository) GetByName(ctx context.Context, name string) (*restaurant.Restaurant, error) {
	var dto RestaurantDTO
	err := r.db.WithContext(ctx).
		First(&dto, "name = ? AND is_deleted = false", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// IncrementPopularity bumps the popularity counter with a relative update so
// concurrent dispatches never lose increments.
func (r *GormRestaurantRepository) IncrementPopularity(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("name = ? AND is_deleted = false", name).
		UpdateColumn("popularity", gorm.Expr("popularity + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", name)
	}
	return nil
}

// DecrementPopularity lowers the popularity counter, flooring at zero. A
// zero-row update means the counter was already at zero, which is a no-op.
func (r *GormRestaurantRepository) DecrementPopularity(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("name = ? AND is_deleted = false AND popularity > 0", name).
		UpdateColumn("popularity", gorm.Expr("popularity - 1")).Error
}

// ReconcilePopularity recomputes every restaurant's popularity from the count
// of its non-deleted dispatched orders.
func (r *GormRestaurantRepository) ReconcilePopularity(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE restaurants r
		SET popularity = (
			SELECT COUNT(*)
			FROM orders o
			WHERE o.restaurant_name = r.name
			  AND o.is_deleted = false
			  AND o.status >= ?
		)
	`, int(order.Sent)).Error
}
