package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/pkg/errs"
)

// GetUserByIDQueryHandler retrieves a user account from the database.
type GetUserByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByIDQueryHandler creates a handler for user lookups.
func NewGetUserByIDQueryHandler(db *gorm.DB) GetUserByIDQueryHandler {
	return GetUserByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no
// matching non-deleted user exists.
func (h GetUserByIDQueryHandler) Handle(ctx context.Context, query GetUserByIDQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			address,
			role,
			owned_restaurant_names
		FROM users
		WHERE id = ? AND is_deleted = false
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return UserResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserResponse{}, err
		}
		return UserResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
	}

	var (
		resp  UserResponse
		id    uuid.UUID
		owned pq.StringArray
	)

	if err = rows.Scan(&id, &resp.Name, &resp.Email, &resp.Address, &resp.Role, &owned); err != nil {
		return UserResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}
	resp.ID = userID
	resp.OwnedRestaurantNames = owned

	return resp, nil
}
