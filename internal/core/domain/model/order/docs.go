// Package order provides the Order aggregate and its lifecycle state machine,
// the core of the fulfillment workflow.
//
// The package includes:
//   - Order: the aggregate root owning status transitions and the courier slot
//   - Status: a forward-only state machine from Pending to a terminal state
//   - LineItem: the frozen per-line snapshot captured at checkout
//   - Payment: the satellite record created atomically with the order
//
// Key business rules:
//   - the item snapshot and the total are fixed at creation; later menu edits
//     never change an existing order
//   - the courier slot is filled at most once through the claim path; losing
//     the claim race surfaces as ErrAlreadyClaimed, a normal outcome
//   - cancellation re-requests on already-cancelled orders are no-op successes
//     to tolerate client retries
//   - card instruments are stored masked to the last four digits; the CVC is
//     never persisted
package order
