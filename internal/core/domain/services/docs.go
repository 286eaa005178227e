// Package services contains stateless domain services: the access policy that
// authorizes lifecycle operations and the pricing resolver that snapshots
// catalog prices into order line items.
package services
