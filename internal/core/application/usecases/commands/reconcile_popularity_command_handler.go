package commands

import (
	"context"
)

// ReconcilePopularityCommandHandler recomputes every restaurant's popularity
// counter from the count of non-deleted dispatched orders. Relative
// increments and decrements keep the counter correct under normal operation;
// reconciliation repairs drift left by partial failures.
type ReconcilePopularityCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewReconcilePopularityCommandHandler creates a handler for popularity reconciliation.
func NewReconcilePopularityCommandHandler(uowFactory RestaurantUoWFactory) ReconcilePopularityCommandHandler {
	return ReconcilePopularityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
func (h *ReconcilePopularityCommandHandler) Handle(ctx context.Context, cmd ReconcilePopularityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RestaurantRepository().ReconcilePopularity(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
