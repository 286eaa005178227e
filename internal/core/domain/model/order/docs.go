// Package order contains the Order aggregate and its lifecycle state machine.
//
// The lifecycle is a strict forward sequence:
//
//	Created ──> Sent ──> Accepted ──> Received ──> Arrived ──> Finished
//
// The aggregate enforces the transition rules and the pricing-snapshot
// invariants (total equals the sum of line totals, line items never empty,
// courier set exactly from Accepted onward). Who may trigger a transition is
// decided by the AccessPolicy domain service; the accompanying side effects
// (popularity counters, notifications) are applied by the command handlers.
package order
