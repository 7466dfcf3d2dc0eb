// Package services contains domain services coordinating multiple aggregates.
// CheckoutService is the cart-to-order conversion: it runs the account and
// restaurant gate checks, snapshots catalog prices into the order, computes
// the total, and records the payment. These are the invariants that must hold
// together at the moment an order is created.
package services
