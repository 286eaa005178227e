// Package restaurant contains the Restaurant aggregate: the natural-key name,
// the denormalized menu list and the popularity counter mutated by the order
// lifecycle.
package restaurant
