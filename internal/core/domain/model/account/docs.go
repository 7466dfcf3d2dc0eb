// Package account provides the Account aggregate, the owner of the account
// gate the fulfillment core consults before allowing cart mutation, order
// placement, and order acceptance.
//
// Account is a tagged union over the marketplace's participant kinds:
// customers, couriers, restaurant owners, and admins share identity and
// standing (ACTIVE/SUSPENDED/BANNED) and carry a role-specific payload.
// Dispatch is by matching the Role tag; the payload accessors return
// ErrRoleMismatch for the wrong role rather than relying on runtime type
// assertions.
package account
