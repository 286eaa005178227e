// Package product contains the Product catalog entry, the pricing source of
// truth at order creation and amendment time.
package product
