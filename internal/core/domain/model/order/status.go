package order

import (
	"errors"
	"fmt"

	"bitebox/internal/pkg/errs"
)

var (
	// ErrAlreadyFinished is returned when advancing an order that reached the
	// terminal Finished status.
	ErrAlreadyFinished = errors.New("order is already finished")

	// ErrStatusHasNoSuccessor is returned when a status outside the lifecycle
	// sequence is asked for its successor.
	ErrStatusHasNoSuccessor = errors.New("status has no successor")

	// ErrStageRequiresDedicatedAction is returned when the generic next-stage
	// transition would reach a status that has its own entry action (sending
	// or courier acceptance).
	ErrStageRequiresDedicatedAction = errors.New("transition requires a dedicated action")
)

// Status represents the lifecycle state of an order. The lifecycle is a strict
// forward sequence with no skipping and no backward transitions:
//
//	Created ──> Sent ──> Accepted ──> Received ──> Arrived ──> Finished
//
// Created→Sent happens through the customer's send action and Sent→Accepted
// through a courier's accept action; the remaining stages are reached through
// the generic Next transition. Finished is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status. The customer may still amend the order.
	Created

	// Sent means the customer dispatched the order to the restaurant.
	Sent

	// Accepted means a courier took the order; the courier is set from here on.
	Accepted

	// Received means the courier picked the order up at the restaurant.
	Received

	// Arrived means the courier reached the customer's address.
	Arrived

	// Finished means the order was delivered. Terminal.
	Finished
)

// lifecycle returns the ordered status sequence the state machine walks.
func lifecycle() []Status {
	return []Status{Created, Sent, Accepted, Received, Arrived, Finished}
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Created:  "Created",
		Sent:     "Sent",
		Accepted: "Accepted",
		Received: "Received",
		Arrived:  "Arrived",
		Finished: "Finished",
	}
}

// Validate checks that the Status value is one of the lifecycle statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s < Created || s > Finished {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It is safe to call on
// any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next computes the successor status in the lifecycle sequence. The caller can
// never name a target status: the current status alone determines the result.
//
// Returns:
//   - ErrAlreadyFinished when called on Finished
//   - InvalidTransitionError wrapping ErrStatusHasNoSuccessor for values
//     outside the lifecycle sequence
func (s Status) Next() (Status, error) {
	if s == Finished {
		return Unknown, ErrAlreadyFinished
	}

	seq := lifecycle()
	for i, current := range seq[:len(seq)-1] {
		if current == s {
			return seq[i+1], nil
		}
	}

	return Unknown, errs.NewInvalidTransitionErrorWithCause(s.String(), ErrStatusHasNoSuccessor)
}

// Reached reports whether the status is at or past the given lifecycle stage.
// Used for effects keyed to "dispatched or later" orders, such as reversing
// the restaurant popularity increment on delete.
func (s Status) Reached(stage Status) bool {
	pos, ok := ordinal(s)
	if !ok {
		return false
	}

	stagePos, ok := ordinal(stage)
	if !ok {
		return false
	}

	return pos >= stagePos
}

func ordinal(s Status) (int, bool) {
	for i, current := range lifecycle() {
		if current == s {
			return i, true
		}
	}
	return 0, false
}

// ValidateAmend checks that the order contents may still change.
// Only Created orders are amendable.
func (s Status) ValidateAmend() error {
	if s != Created {
		return errs.NewInvalidTransitionErrorWithCause(
			s.String(),
			errors.New("only Created orders can be amended"),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment: a courier is set exactly from Accepted onward.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && !s.Reached(Accepted) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && s.Reached(Accepted) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}
