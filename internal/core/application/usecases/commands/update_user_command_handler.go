package commands

import (
	"context"

	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/core/domain/services"
)

// UpdateUserCommandHandler handles profile updates by the account owner or a
// platform admin.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateUserCommandHandler creates a handler for account updates.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the update command.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanManageUser(cmd.Actor(), cmd.UserID()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existing, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if name := cmd.Name(); name != nil {
		if err = existing.Rename(*name); err != nil {
			return nil, err
		}
	}

	if email := cmd.Email(); email != nil {
		if err = existing.ChangeEmail(*email); err != nil {
			return nil, err
		}
	}

	if address := cmd.Address(); address != nil {
		if err = existing.ChangeAddress(*address); err != nil {
			return nil, err
		}
	}

	if err = userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
