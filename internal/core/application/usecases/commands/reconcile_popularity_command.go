package commands

import (
	"errors"

	"bitebox/internal/pkg/guard"
)

var ErrReconcilePopularityCommandIsNotConstructed = errors.New(
	"ReconcilePopularityCommand must be created via NewReconcilePopularityCommand constructor",
)

// ReconcilePopularityCommand triggers a full recomputation of restaurant
// popularity counters from the dispatched-order counts. Issued by the
// background reconciliation job; carries no parameters.
type ReconcilePopularityCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcilePopularityCommand creates a reconciliation command.
func NewReconcilePopularityCommand() ReconcilePopularityCommand {
	return ReconcilePopularityCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcilePopularityCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePopularityCommandIsNotConstructed)
}
