package commands

import (
	"context"

	"bitebox/internal/core/domain/services"
)

// DeleteUserCommandHandler handles account tombstoning. The account owner or
// a platform admin may delete. Restaurants owned by a deleted admin and orders
// placed by a deleted customer are left untouched.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteUserCommandHandler creates a handler for account deletion.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the deletion command. The account row is kept as a
// tombstone and disappears from reads.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageUser(cmd.Actor(), cmd.UserID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existing, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = existing.MarkDeleted(); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
